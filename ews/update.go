package ews

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// Property is a property path together with the value it should take. It
// is the payload of an Update.
type Property struct {
	Path  PropertyPath
	value *etree.Element
	empty bool
	err   error
}

// NewProperty pairs path with value. Supported values are string, bool,
// integers, DateTime, Date, Body, MimeContent, Mailbox, []Mailbox,
// Attendee, []Attendee, Recurrence, []string, EmailAddress, PhoneNumber,
// ImAddress, PhysicalAddress and the string-based enums of this package.
//
// An unsupported value is reported by the update call the property is
// passed to. An empty value selects DeleteItemField in NewUpdate.
func NewProperty(path PropertyPath, value any) Property {
	p := Property{Path: path}
	if !path.Valid() {
		p.err = ErrUnknownPropertyPath
		return p
	}
	p.value, p.empty, p.err = renderValue(path, value)
	return p
}

// XML renders the property wrapped in its owning item element, for
// example <t:Contact><t:SpouseName>Mickey</t:SpouseName></t:Contact>.
func (p Property) XML() string {
	if p.value == nil {
		return ""
	}
	return xmldom.String(p.wrapped())
}

func (p Property) wrapped() *etree.Element {
	w := xmldom.New("t", p.Path.wrapper())
	w.AddChild(p.value.Copy())
	return w
}

func textElement(local, text string) *etree.Element {
	e := xmldom.New("t", local)
	e.SetText(text)
	return e
}

// renderValue builds the property element for value and reports whether
// the value counts as empty.
func renderValue(path PropertyPath, value any) (*etree.Element, bool, error) {
	local := path.propertyElement()
	if path.IsIndexed() {
		return renderIndexed(path, value)
	}
	switch v := value.(type) {
	case nil:
		return xmldom.New("t", local), true, nil
	case string:
		return textElement(local, v), v == "", nil
	case bool:
		return textElement(local, strconv.FormatBool(v)), false, nil
	case int:
		return textElement(local, strconv.Itoa(v)), false, nil
	case int64:
		return textElement(local, strconv.FormatInt(v, 10)), false, nil
	case DateTime:
		return textElement(local, string(v)), !v.IsSet(), nil
	case Date:
		return textElement(local, string(v)), v == "", nil
	case Body:
		return v.element(), v.Content == "", nil
	case MimeContent:
		return v.element(), v.None(), nil
	case Mailbox:
		e := xmldom.New("t", local)
		e.AddChild(v.element("Mailbox"))
		return e, v.None(), nil
	case []Mailbox:
		return mailboxListElement(local, v), len(v) == 0, nil
	case Attendee:
		return attendeeListElement(local, []Attendee{v}), v.Mailbox.None(), nil
	case []Attendee:
		return attendeeListElement(local, v), len(v) == 0, nil
	case Recurrence:
		return v.element(), v.Pattern == nil && v.Range == nil, nil
	case []string:
		return stringListElement(local, v), len(v) == 0, nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return textElement(local, rv.String()), rv.String() == "", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return textElement(local, strconv.FormatInt(rv.Int(), 10)), false, nil
	}
	return nil, false, fmt.Errorf("property %s: unsupported value type %T", path, value)
}

// renderIndexed builds a one-entry dictionary for an indexed path.
func renderIndexed(path PropertyPath, value any) (*etree.Element, bool, error) {
	dict := xmldom.New("t", path.propertyElement())
	key := path.Index()
	var entry *etree.Element
	empty := false
	switch v := value.(type) {
	case string:
		if field := path.physicalAddressField(); field != "" {
			entry = xmldom.New("t", "Entry")
			entry.CreateAttr("Key", key)
			xmldom.AddText(entry, "t", field, v)
		} else {
			entry = textElement("Entry", v)
			entry.CreateAttr("Key", key)
		}
		empty = v == ""
	case EmailAddress:
		v.Key = EmailAddressKey(key)
		entry, empty = v.element(), v.Value == ""
	case PhoneNumber:
		v.Key = PhoneNumberKey(key)
		entry, empty = v.element(), v.Value == ""
	case ImAddress:
		v.Key = ImAddressKey(key)
		entry, empty = v.element(), v.Value == ""
	case PhysicalAddress:
		field := PhysicalAddressField(path.physicalAddressField())
		entry = xmldom.New("t", "Entry")
		entry.CreateAttr("Key", key)
		xmldom.AddText(entry, "t", string(field), v.field(field))
		empty = v.field(field) == ""
	default:
		return nil, false, fmt.Errorf("property %s: unsupported value type %T", path, value)
	}
	dict.AddChild(entry)
	return dict, empty, nil
}

// UpdateOp is the kind of change an Update makes.
type UpdateOp int

// Update operations.
const (
	SetField UpdateOp = iota
	AppendToField
	DeleteField
)

func (op UpdateOp) element(target string) string {
	switch op {
	case AppendToField:
		return "AppendTo" + target + "Field"
	case DeleteField:
		return "Delete" + target + "Field"
	default:
		return "Set" + target + "Field"
	}
}

// Update describes one change of an UpdateItem or UpdateFolder call.
type Update struct {
	Op       UpdateOp
	Property Property
}

// NewUpdate picks the operation from the property: an empty value deletes
// the property, an appendable path appends to it, anything else sets it.
func NewUpdate(p Property) Update {
	switch {
	case p.empty:
		return Update{Op: DeleteField, Property: p}
	case p.Path.Appendable():
		return Update{Op: AppendToField, Property: p}
	default:
		return Update{Op: SetField, Property: p}
	}
}

// SetItemField replaces the value of the property.
func SetItemField(p Property) Update {
	return Update{Op: SetField, Property: p}
}

// AppendToItemField appends the value to a collection property.
func AppendToItemField(p Property) Update {
	return Update{Op: AppendToField, Property: p}
}

// DeleteItemField removes the property.
func DeleteItemField(path PropertyPath) Update {
	return Update{Op: DeleteField, Property: Property{Path: path, empty: true}}
}

// validate rejects updates the server would refuse before anything is sent.
func (u Update) validate() error {
	p := u.Property
	if p.err != nil {
		return p.err
	}
	if !p.Path.Valid() {
		return ErrUnknownPropertyPath
	}
	if p.Path.ReadOnly() {
		if u.Op == DeleteField {
			return newExchangeError(ErrorInvalidPropertyDelete, "property "+p.Path.String()+" is read-only")
		}
		return newExchangeError(ErrorInvalidPropertySet, "property "+p.Path.String()+" is read-only")
	}
	if u.Op == AppendToField && !p.Path.Appendable() {
		return newExchangeError(ErrorInvalidPropertyAppend, "property "+p.Path.String()+" does not support append")
	}
	if u.Op != DeleteField && p.value == nil {
		return fmt.Errorf("property %s: no value", p.Path)
	}
	return nil
}

// element renders <t:SetItemField>, <t:AppendToFolderField> and so on.
// target is "Item" or "Folder".
func (u Update) element(target string) *etree.Element {
	e := xmldom.New("t", u.Op.element(target))
	e.AddChild(u.Property.Path.element())
	if u.Op != DeleteField {
		e.AddChild(u.Property.wrapped())
	}
	return e
}

// XML renders the update as part of an UpdateItem request.
func (u Update) XML() string {
	return xmldom.String(u.element("Item"))
}
