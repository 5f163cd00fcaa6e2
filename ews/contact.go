package ews

import (
	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// Contact is an entry in a contacts folder.
type Contact struct {
	Item
}

// NewContact returns an empty contact.
func NewContact() *Contact {
	return &Contact{Item: *newItem(KindContact)}
}

// Clone returns an independent deep copy.
func (c *Contact) Clone() *Contact {
	return &Contact{Item: *c.Item.Clone()}
}

// PhoneNumber is one entry of a contact's PhoneNumbers dictionary.
type PhoneNumber struct {
	Key   PhoneNumberKey
	Value string
}

func (p PhoneNumber) element() *etree.Element {
	e := xmldom.New("t", "Entry")
	e.CreateAttr("Key", string(p.Key))
	e.SetText(p.Value)
	return e
}

// ImAddress is one entry of a contact's ImAddresses dictionary.
type ImAddress struct {
	Key   ImAddressKey
	Value string
}

func (a ImAddress) element() *etree.Element {
	e := xmldom.New("t", "Entry")
	e.CreateAttr("Key", string(a.Key))
	e.SetText(a.Value)
	return e
}

// PhysicalAddress is one entry of a contact's PhysicalAddresses dictionary.
// Empty components are omitted on the wire.
type PhysicalAddress struct {
	Key             PhysicalAddressKey
	Street          string
	City            string
	State           string
	CountryOrRegion string
	PostalCode      string
}

func (a PhysicalAddress) element() *etree.Element {
	e := xmldom.New("t", "Entry")
	e.CreateAttr("Key", string(a.Key))
	for _, f := range []struct{ name, value string }{
		{"Street", a.Street},
		{"City", a.City},
		{"State", a.State},
		{"CountryOrRegion", a.CountryOrRegion},
		{"PostalCode", a.PostalCode},
	} {
		if f.value != "" {
			xmldom.AddText(e, "t", f.name, f.value)
		}
	}
	return e
}

func (a PhysicalAddress) field(f PhysicalAddressField) string {
	switch f {
	case AddressStreet:
		return a.Street
	case AddressCity:
		return a.City
	case AddressState:
		return a.State
	case AddressCountryOrRegion:
		return a.CountryOrRegion
	case AddressPostalCode:
		return a.PostalCode
	}
	return ""
}

func physicalAddressFromElement(e *etree.Element) PhysicalAddress {
	return PhysicalAddress{
		Key:             PhysicalAddressKey(xmldom.Attr(e, "Key")),
		Street:          xmldom.ChildText(e, "Street", xmldom.NSTypes),
		City:            xmldom.ChildText(e, "City", xmldom.NSTypes),
		State:           xmldom.ChildText(e, "State", xmldom.NSTypes),
		CountryOrRegion: xmldom.ChildText(e, "CountryOrRegion", xmldom.NSTypes),
		PostalCode:      xmldom.ChildText(e, "PostalCode", xmldom.NSTypes),
	}
}

// CompleteName is the server-computed full name of a contact.
type CompleteName struct {
	Title      string
	FirstName  string
	MiddleName string
	LastName   string
	Suffix     string
	Initials   string
	FullName   string
	Nickname   string
}

// setEntry replaces the dictionary entry with the same Key, or appends it.
func (c *Contact) setEntry(dictionary string, entry *etree.Element) {
	p := c.bag()
	dict := p.element(dictionary)
	if dict == nil {
		dict = xmldom.New("t", dictionary)
		p.insert(dict)
	}
	key := xmldom.Attr(entry, "Key")
	for _, old := range xmldom.Children(dict, "Entry", xmldom.NSTypes) {
		if xmldom.Attr(old, "Key") == key {
			idx := old.Index()
			dict.RemoveChild(old)
			dict.InsertChildAt(idx, entry)
			return
		}
	}
	dict.AddChild(entry)
}

func (c *Contact) entries(dictionary string) []*etree.Element {
	return xmldom.Children(c.bag().element(dictionary), "Entry", xmldom.NSTypes)
}

// EmailAddresses returns all email address entries.
func (c *Contact) EmailAddresses() []EmailAddress {
	var out []EmailAddress
	for _, e := range c.entries("EmailAddresses") {
		out = append(out, emailAddressFromElement(e))
	}
	return out
}

// EmailAddress returns the address stored under key, or "".
func (c *Contact) EmailAddress(key EmailAddressKey) string {
	for _, a := range c.EmailAddresses() {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// SetEmailAddress sets one email address slot.
func (c *Contact) SetEmailAddress(a EmailAddress) {
	c.setEntry("EmailAddresses", a.element())
}

// PhoneNumbers returns all phone number entries.
func (c *Contact) PhoneNumbers() []PhoneNumber {
	var out []PhoneNumber
	for _, e := range c.entries("PhoneNumbers") {
		out = append(out, PhoneNumber{Key: PhoneNumberKey(xmldom.Attr(e, "Key")), Value: xmldom.Text(e)})
	}
	return out
}

// PhoneNumber returns the number stored under key, or "".
func (c *Contact) PhoneNumber(key PhoneNumberKey) string {
	for _, p := range c.PhoneNumbers() {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// SetPhoneNumber sets one phone number slot.
func (c *Contact) SetPhoneNumber(p PhoneNumber) {
	c.setEntry("PhoneNumbers", p.element())
}

// ImAddresses returns all instant messaging entries.
func (c *Contact) ImAddresses() []ImAddress {
	var out []ImAddress
	for _, e := range c.entries("ImAddresses") {
		out = append(out, ImAddress{Key: ImAddressKey(xmldom.Attr(e, "Key")), Value: xmldom.Text(e)})
	}
	return out
}

// SetImAddress sets one instant messaging slot.
func (c *Contact) SetImAddress(a ImAddress) {
	c.setEntry("ImAddresses", a.element())
}

// PhysicalAddresses returns all postal addresses.
func (c *Contact) PhysicalAddresses() []PhysicalAddress {
	var out []PhysicalAddress
	for _, e := range c.entries("PhysicalAddresses") {
		out = append(out, physicalAddressFromElement(e))
	}
	return out
}

// SetPhysicalAddress sets one postal address slot.
func (c *Contact) SetPhysicalAddress(a PhysicalAddress) {
	c.setEntry("PhysicalAddresses", a.element())
}

// CompleteName returns the server-computed name parts.
func (c *Contact) CompleteName() CompleteName {
	e := c.bag().element("CompleteName")
	text := func(name string) string { return xmldom.ChildText(e, name, xmldom.NSTypes) }
	return CompleteName{
		Title:      text("Title"),
		FirstName:  text("FirstName"),
		MiddleName: text("MiddleName"),
		LastName:   text("LastName"),
		Suffix:     text("Suffix"),
		Initials:   text("Initials"),
		FullName:   text("FullName"),
		Nickname:   text("Nickname"),
	}
}

// Scalar contact properties. Birthday and WeddingAnniversary are xs:dateTime
// strings; the server answers with a full timestamp even when a date was set.

func (c *Contact) AssistantName() string { return c.bag().Get("AssistantName") }
func (c *Contact) SetAssistantName(s string) { c.bag().SetOrUpdate("AssistantName", s) }
func (c *Contact) Birthday() string { return c.bag().Get("Birthday") }
func (c *Contact) SetBirthday(s string) { c.bag().SetOrUpdate("Birthday", s) }
func (c *Contact) BusinessHomePage() string { return c.bag().Get("BusinessHomePage") }
func (c *Contact) SetBusinessHomePage(s string) { c.bag().SetOrUpdate("BusinessHomePage", s) }
func (c *Contact) Children() []string { return c.bag().strings("Children") }
func (c *Contact) SetChildren(names []string) { c.bag().setStrings("Children", names) }
func (c *Contact) Companies() []string { return c.bag().strings("Companies") }
func (c *Contact) SetCompanies(names []string) { c.bag().setStrings("Companies", names) }
func (c *Contact) CompanyName() string { return c.bag().Get("CompanyName") }
func (c *Contact) SetCompanyName(s string) { c.bag().SetOrUpdate("CompanyName", s) }
func (c *Contact) ContactSource() string { return c.bag().Get("ContactSource") }
func (c *Contact) Department() string { return c.bag().Get("Department") }
func (c *Contact) SetDepartment(s string) { c.bag().SetOrUpdate("Department", s) }
func (c *Contact) DisplayName() string { return c.bag().Get("DisplayName") }
func (c *Contact) SetDisplayName(s string) { c.bag().SetOrUpdate("DisplayName", s) }
func (c *Contact) FileAs() string { return c.bag().Get("FileAs") }
func (c *Contact) SetFileAs(s string) { c.bag().SetOrUpdate("FileAs", s) }
func (c *Contact) Generation() string { return c.bag().Get("Generation") }
func (c *Contact) SetGeneration(s string) { c.bag().SetOrUpdate("Generation", s) }
func (c *Contact) GivenName() string { return c.bag().Get("GivenName") }
func (c *Contact) SetGivenName(s string) { c.bag().SetOrUpdate("GivenName", s) }
func (c *Contact) Initials() string { return c.bag().Get("Initials") }
func (c *Contact) SetInitials(s string) { c.bag().SetOrUpdate("Initials", s) }
func (c *Contact) JobTitle() string { return c.bag().Get("JobTitle") }
func (c *Contact) SetJobTitle(s string) { c.bag().SetOrUpdate("JobTitle", s) }
func (c *Contact) Manager() string { return c.bag().Get("Manager") }
func (c *Contact) SetManager(s string) { c.bag().SetOrUpdate("Manager", s) }
func (c *Contact) MiddleName() string { return c.bag().Get("MiddleName") }
func (c *Contact) SetMiddleName(s string) { c.bag().SetOrUpdate("MiddleName", s) }
func (c *Contact) Nickname() string { return c.bag().Get("Nickname") }
func (c *Contact) SetNickname(s string) { c.bag().SetOrUpdate("Nickname", s) }
func (c *Contact) OfficeLocation() string { return c.bag().Get("OfficeLocation") }
func (c *Contact) SetOfficeLocation(s string) { c.bag().SetOrUpdate("OfficeLocation", s) }
func (c *Contact) Profession() string { return c.bag().Get("Profession") }
func (c *Contact) SetProfession(s string) { c.bag().SetOrUpdate("Profession", s) }
func (c *Contact) SpouseName() string { return c.bag().Get("SpouseName") }
func (c *Contact) SetSpouseName(s string) { c.bag().SetOrUpdate("SpouseName", s) }
func (c *Contact) Surname() string { return c.bag().Get("Surname") }
func (c *Contact) SetSurname(s string) { c.bag().SetOrUpdate("Surname", s) }
func (c *Contact) WeddingAnniversary() string { return c.bag().Get("WeddingAnniversary") }
func (c *Contact) SetWeddingAnniversary(s string) { c.bag().SetOrUpdate("WeddingAnniversary", s) }
func (c *Contact) PostalAddressIndex() string { return c.bag().Get("PostalAddressIndex") }
func (c *Contact) SetPostalAddressIndex(s string) { c.bag().SetOrUpdate("PostalAddressIndex", s) }
func (c *Contact) HasPicture() bool { return c.bag().bool("HasPicture") }
func (c *Contact) DirectoryID() string { return c.bag().Get("DirectoryId") }
func (c *Contact) Notes() string { return c.bag().Get("Notes") }
func (c *Contact) Alias() string { return c.bag().Get("Alias") }
func (c *Contact) PhoneticFullName() string { return c.bag().Get("PhoneticFullName") }
func (c *Contact) ManagerMailbox() Mailbox { return c.bag().mailbox("ManagerMailbox") }
func (c *Contact) DirectReports() []Mailbox { return c.bag().mailboxes("DirectReports") }
