package ews

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

type pathFlags uint8

const (
	pathReadOnly pathFlags = 1 << iota
	pathAppendable
	pathIndexed
)

// PropertyPath names a property in response shapes, restrictions, sort
// orders and updates. Paths come from a closed catalog: use the Path*
// variables, the Contact*Path constructors for indexed properties, or
// ParsePropertyPath.
type PropertyPath struct {
	uri   string
	index string
	flags pathFlags
}

func newPath(uri string, flags pathFlags) PropertyPath {
	return PropertyPath{uri: uri, flags: flags}
}

// URI returns the FieldURI, for example "item:Subject".
func (p PropertyPath) URI() string {
	return p.uri
}

// Index returns the FieldIndex of an indexed path, or "".
func (p PropertyPath) Index() string {
	return p.index
}

// Class returns the part before the first colon, for example "item".
func (p PropertyPath) Class() string {
	class, _, _ := strings.Cut(p.uri, ":")
	return class
}

// Name returns the part after the first colon, for example "Subject".
func (p PropertyPath) Name() string {
	_, name, _ := strings.Cut(p.uri, ":")
	return name
}

// Valid reports whether p was taken from the catalog.
func (p PropertyPath) Valid() bool {
	return p.uri != ""
}

// IsIndexed reports whether p is an IndexedFieldURI.
func (p PropertyPath) IsIndexed() bool {
	return p.flags&pathIndexed != 0
}

// ReadOnly reports whether the server rejects updates to p.
func (p PropertyPath) ReadOnly() bool {
	return p.flags&pathReadOnly != 0
}

// Appendable reports whether updates to p append to a collection.
func (p PropertyPath) Appendable() bool {
	return p.flags&pathAppendable != 0
}

// String returns the URI and, for indexed paths, the index.
func (p PropertyPath) String() string {
	if p.IsIndexed() {
		return p.uri + "[" + p.index + "]"
	}
	return p.uri
}

// XML renders <t:FieldURI FieldURI="…"/> or
// <t:IndexedFieldURI FieldURI="…" FieldIndex="…"/>.
func (p PropertyPath) XML() string {
	return xmldom.String(p.element())
}

func (p PropertyPath) element() *etree.Element {
	if p.IsIndexed() {
		e := xmldom.New("t", "IndexedFieldURI")
		e.CreateAttr("FieldURI", p.uri)
		e.CreateAttr("FieldIndex", p.index)
		return e
	}
	e := xmldom.New("t", "FieldURI")
	e.CreateAttr("FieldURI", p.uri)
	return e
}

var classElements = map[string]string{
	"folder":           "Folder",
	"item":             "Item",
	"message":          "Message",
	"meeting":          "MeetingMessage",
	"meetingRequest":   "MeetingRequest",
	"calendar":         "CalendarItem",
	"task":             "Task",
	"contacts":         "Contact",
	"distributionlist": "DistributionList",
	"postitem":         "PostItem",
	"conversation":     "Conversation",
}

// wrapper is the item or folder element an update of p is wrapped in.
func (p PropertyPath) wrapper() string {
	return classElements[p.Class()]
}

// propertyElement is the element p selects inside an item.
func (p PropertyPath) propertyElement() string {
	if !p.IsIndexed() {
		return p.Name()
	}
	name := p.Name()
	switch {
	case name == "EmailAddress":
		return "EmailAddresses"
	case name == "PhoneNumber":
		return "PhoneNumbers"
	case name == "ImAddress":
		return "ImAddresses"
	case strings.HasPrefix(name, "PhysicalAddress:"):
		return "PhysicalAddresses"
	}
	return name
}

// physicalAddressField is the child of a PhysicalAddresses entry an indexed
// physical address path selects, for example "Street".
func (p PropertyPath) physicalAddressField() string {
	_, field, ok := strings.Cut(p.Name(), "PhysicalAddress:")
	if !ok {
		return ""
	}
	return field
}

// PhoneNumberKey indexes a contact's phone numbers.
type PhoneNumberKey string

// Phone number slots of a contact.
const (
	AssistantPhone   PhoneNumberKey = "AssistantPhone"
	BusinessFax      PhoneNumberKey = "BusinessFax"
	BusinessPhone    PhoneNumberKey = "BusinessPhone"
	BusinessPhone2   PhoneNumberKey = "BusinessPhone2"
	Callback         PhoneNumberKey = "Callback"
	CarPhone         PhoneNumberKey = "CarPhone"
	CompanyMainPhone PhoneNumberKey = "CompanyMainPhone"
	HomeFax          PhoneNumberKey = "HomeFax"
	HomePhone        PhoneNumberKey = "HomePhone"
	HomePhone2       PhoneNumberKey = "HomePhone2"
	Isdn             PhoneNumberKey = "Isdn"
	MobilePhone      PhoneNumberKey = "MobilePhone"
	OtherFax         PhoneNumberKey = "OtherFax"
	OtherTelephone   PhoneNumberKey = "OtherTelephone"
	Pager            PhoneNumberKey = "Pager"
	PrimaryPhone     PhoneNumberKey = "PrimaryPhone"
	RadioPhone       PhoneNumberKey = "RadioPhone"
	Telex            PhoneNumberKey = "Telex"
	TtyTddPhone      PhoneNumberKey = "TtyTddPhone"
)

// ImAddressKey indexes a contact's instant messaging addresses.
type ImAddressKey string

// Instant messaging slots of a contact.
const (
	ImAddress1 ImAddressKey = "ImAddress1"
	ImAddress2 ImAddressKey = "ImAddress2"
	ImAddress3 ImAddressKey = "ImAddress3"
)

// PhysicalAddressKey indexes a contact's postal addresses.
type PhysicalAddressKey string

// Postal address slots of a contact.
const (
	HomeAddress     PhysicalAddressKey = "Home"
	BusinessAddress PhysicalAddressKey = "Business"
	OtherAddress    PhysicalAddressKey = "Other"
)

// PhysicalAddressField is one component of a postal address.
type PhysicalAddressField string

// Postal address components.
const (
	AddressStreet          PhysicalAddressField = "Street"
	AddressCity            PhysicalAddressField = "City"
	AddressState           PhysicalAddressField = "State"
	AddressCountryOrRegion PhysicalAddressField = "CountryOrRegion"
	AddressPostalCode      PhysicalAddressField = "PostalCode"
)

var indexedPaths = map[string][]string{
	"contacts:EmailAddress": {"EmailAddress1", "EmailAddress2", "EmailAddress3"},
	"contacts:ImAddress":    {"ImAddress1", "ImAddress2", "ImAddress3"},
	"contacts:PhoneNumber": {
		"AssistantPhone", "BusinessFax", "BusinessPhone", "BusinessPhone2",
		"Callback", "CarPhone", "CompanyMainPhone", "HomeFax", "HomePhone",
		"HomePhone2", "Isdn", "MobilePhone", "OtherFax", "OtherTelephone",
		"Pager", "PrimaryPhone", "RadioPhone", "Telex", "TtyTddPhone",
	},
	"contacts:PhysicalAddress:Street":          {"Home", "Business", "Other"},
	"contacts:PhysicalAddress:City":            {"Home", "Business", "Other"},
	"contacts:PhysicalAddress:State":           {"Home", "Business", "Other"},
	"contacts:PhysicalAddress:CountryOrRegion": {"Home", "Business", "Other"},
	"contacts:PhysicalAddress:PostalCode":      {"Home", "Business", "Other"},
}

func indexedPath(uri, index string) PropertyPath {
	return PropertyPath{uri: uri, index: index, flags: pathIndexed}
}

// ContactEmailAddressPath selects one of a contact's email addresses.
func ContactEmailAddressPath(key EmailAddressKey) PropertyPath {
	return indexedPath("contacts:EmailAddress", string(key))
}

// ContactPhoneNumberPath selects one of a contact's phone numbers.
func ContactPhoneNumberPath(key PhoneNumberKey) PropertyPath {
	return indexedPath("contacts:PhoneNumber", string(key))
}

// ContactImAddressPath selects one of a contact's IM addresses.
func ContactImAddressPath(key ImAddressKey) PropertyPath {
	return indexedPath("contacts:ImAddress", string(key))
}

// ContactPhysicalAddressPath selects one component of a postal address.
func ContactPhysicalAddressPath(field PhysicalAddressField, key PhysicalAddressKey) PropertyPath {
	return indexedPath("contacts:PhysicalAddress:"+string(field), string(key))
}

// Frequently used indexed paths.
var (
	PathContactEmailAddress1 = ContactEmailAddressPath(EmailAddress1)
	PathContactEmailAddress2 = ContactEmailAddressPath(EmailAddress2)
	PathContactEmailAddress3 = ContactEmailAddressPath(EmailAddress3)
	PathContactBusinessPhone = ContactPhoneNumberPath(BusinessPhone)
	PathContactMobilePhone   = ContactPhoneNumberPath(MobilePhone)
	PathContactHomePhone     = ContactPhoneNumberPath(HomePhone)
)

var pathsByURI = func() map[string]PropertyPath {
	m := make(map[string]PropertyPath, len(unindexedPaths))
	for _, p := range unindexedPaths {
		m[p.uri] = p
	}
	return m
}()

// ParsePropertyPath looks up a FieldURI in the catalog.
func ParsePropertyPath(uri string) (PropertyPath, error) {
	if p, ok := pathsByURI[uri]; ok {
		return p, nil
	}
	return PropertyPath{}, ErrUnknownPropertyPath
}

// ParseIndexedPropertyPath looks up an IndexedFieldURI and its FieldIndex.
func ParseIndexedPropertyPath(uri, index string) (PropertyPath, error) {
	for _, allowed := range indexedPaths[uri] {
		if allowed == index {
			return indexedPath(uri, index), nil
		}
	}
	return PropertyPath{}, ErrUnknownPropertyPath
}
