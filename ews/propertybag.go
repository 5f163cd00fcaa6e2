package ews

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// Properties is the XML subtree of an item or folder. It is the single
// source of truth for serialization, so properties the typed accessors do
// not know about survive a round trip.
//
// A Properties value owns its subtree. Clone returns an independent copy.
type Properties struct {
	root  *etree.Element
	order map[string]int
}

func newProperties(local string, sequence []string) *Properties {
	return &Properties{root: xmldom.New("t", local), order: sequenceIndex(sequence)}
}

// propertiesFrom copies e so the result never aliases a response document.
func propertiesFrom(e *etree.Element, sequence []string) *Properties {
	return &Properties{root: xmldom.Detach(e), order: sequenceIndex(sequence)}
}

func sequenceIndex(sequence []string) map[string]int {
	m := make(map[string]int, len(sequence))
	for i, name := range sequence {
		m[name] = i
	}
	return m
}

// Get returns the text of the first child element named name, or "".
func (p *Properties) Get(name string) string {
	return xmldom.Text(p.element(name))
}

// Has reports whether a child element named name exists.
func (p *Properties) Has(name string) bool {
	return p.element(name) != nil
}

func (p *Properties) element(name string) *etree.Element {
	return xmldom.Child(p.root, name, xmldom.NSTypes)
}

// SetOrUpdate overwrites the text of the element named name or inserts a new
// element at its schema position.
func (p *Properties) SetOrUpdate(name, value string) {
	if e := p.element(name); e != nil {
		for _, ch := range e.ChildElements() {
			e.RemoveChild(ch)
		}
		e.SetText(value)
		return
	}
	e := xmldom.New("t", name)
	e.SetText(value)
	p.insert(e)
}

// SetAttribute sets an attribute on the element named name, creating the
// element when it is missing.
func (p *Properties) SetAttribute(name, attr, value string) {
	e := p.element(name)
	if e == nil {
		e = xmldom.New("t", name)
		p.insert(e)
	}
	e.CreateAttr(attr, value)
}

// Remove unlinks the element named name.
func (p *Properties) Remove(name string) {
	if e := p.element(name); e != nil {
		p.root.RemoveChild(e)
	}
}

// Clone returns a deep copy.
func (p *Properties) Clone() *Properties {
	return &Properties{root: p.root.Copy(), order: p.order}
}

// XML serializes the subtree.
func (p *Properties) XML() string {
	return xmldom.String(p.root)
}

// replace swaps in e for the element of the same name, or inserts it.
func (p *Properties) replace(e *etree.Element) {
	if old := p.element(e.Tag); old != nil {
		idx := old.Index()
		p.root.RemoveChild(old)
		p.root.InsertChildAt(idx, e)
		return
	}
	p.insert(e)
}

// appendTo appends the children of e to the element of the same name, or
// inserts e when no such element exists.
func (p *Properties) appendTo(e *etree.Element) {
	existing := p.element(e.Tag)
	if existing == nil {
		p.insert(e)
		return
	}
	for _, ch := range e.ChildElements() {
		existing.AddChild(ch.Copy())
	}
}

// insert places e before the first child that follows it in the schema
// sequence. Elements outside the sequence go last.
func (p *Properties) insert(e *etree.Element) {
	pos, known := p.order[e.Tag]
	if known {
		for _, ch := range p.root.ChildElements() {
			if other, ok := p.order[ch.Tag]; ok && other > pos {
				p.root.InsertChildAt(ch.Index(), e)
				return
			}
		}
	}
	p.root.AddChild(e)
}

func (p *Properties) bool(name string) bool {
	return p.Get(name) == "true"
}

func (p *Properties) setBool(name string, v bool) {
	p.SetOrUpdate(name, strconv.FormatBool(v))
}

func (p *Properties) int(name string) int {
	n, err := strconv.Atoi(p.Get(name))
	if err != nil {
		return 0
	}
	return n
}

func (p *Properties) setInt(name string, v int) {
	p.SetOrUpdate(name, strconv.Itoa(v))
}

func (p *Properties) strings(name string) []string {
	e := p.element(name)
	if e == nil {
		return nil
	}
	var out []string
	for _, s := range e.ChildElements() {
		out = append(out, s.Text())
	}
	return out
}

func (p *Properties) setStrings(name string, values []string) {
	p.replace(stringListElement(name, values))
}

func stringListElement(name string, values []string) *etree.Element {
	e := xmldom.New("t", name)
	for _, v := range values {
		xmldom.AddText(e, "t", "String", v)
	}
	return e
}

func (p *Properties) mailbox(name string) Mailbox {
	e := p.element(name)
	if e == nil {
		return Mailbox{}
	}
	if mb := xmldom.Child(e, "Mailbox", xmldom.NSTypes); mb != nil {
		return mailboxFromElement(mb)
	}
	return Mailbox{}
}

func (p *Properties) setMailbox(name string, m Mailbox) {
	e := xmldom.New("t", name)
	e.AddChild(m.element("Mailbox"))
	p.replace(e)
}

func (p *Properties) mailboxes(name string) []Mailbox {
	return mailboxesFromElement(p.element(name))
}

func (p *Properties) setMailboxes(name string, boxes []Mailbox) {
	p.replace(mailboxListElement(name, boxes))
}
