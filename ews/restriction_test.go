package ews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestriction_XML(t *testing.T) {
	tests := []struct {
		name string
		r    Restriction
		want string
	}{
		{
			name: "empty",
			r:    Restriction{},
			want: "",
		},
		{
			name: "is equal to constant",
			r:    IsEqualTo(PathMessageIsRead, false),
			want: `<t:IsEqualTo><t:FieldURI FieldURI="message:IsRead"/><t:FieldURIOrConstant><t:Constant Value="false"/></t:FieldURIOrConstant></t:IsEqualTo>`,
		},
		{
			name: "is equal to path",
			r:    IsEqualTo(PathItemSubject, PathMessageConversationTopic),
			want: `<t:IsEqualTo><t:FieldURI FieldURI="item:Subject"/><t:FieldURIOrConstant><t:FieldURI FieldURI="message:ConversationTopic"/></t:FieldURIOrConstant></t:IsEqualTo>`,
		},
		{
			name: "greater than date",
			r:    IsGreaterThan(PathItemDateTimeReceived, DateTime("2026-01-01T00:00:00Z")),
			want: `<t:IsGreaterThan><t:FieldURI FieldURI="item:DateTimeReceived"/><t:FieldURIOrConstant><t:Constant Value="2026-01-01T00:00:00Z"/></t:FieldURIOrConstant></t:IsGreaterThan>`,
		},
		{
			name: "enum constant",
			r:    IsNotEqualTo(PathTaskStatus, TaskCompleted),
			want: `<t:IsNotEqualTo><t:FieldURI FieldURI="task:Status"/><t:FieldURIOrConstant><t:Constant Value="Completed"/></t:FieldURIOrConstant></t:IsNotEqualTo>`,
		},
		{
			name: "contains defaults",
			r:    Contains(PathItemSubject, "milk"),
			want: `<t:Contains ContainmentMode="Substring" ContainmentComparison="Loose"><t:FieldURI FieldURI="item:Subject"/><t:Constant Value="milk"/></t:Contains>`,
		},
		{
			name: "contains with options",
			r:    Contains(PathItemSubject, "Re:", WithContainmentMode(Prefixed), WithContainmentComparison(IgnoreCase)),
			want: `<t:Contains ContainmentMode="Prefixed" ContainmentComparison="IgnoreCase"><t:FieldURI FieldURI="item:Subject"/><t:Constant Value="Re:"/></t:Contains>`,
		},
		{
			name: "exists",
			r:    Exists(PathItemCategories),
			want: `<t:Exists><t:FieldURI FieldURI="item:Categories"/></t:Exists>`,
		},
		{
			name: "excludes",
			r:    Excludes(PathItemSize, 16),
			want: `<t:Excludes><t:FieldURI FieldURI="item:Size"/><t:Bitmask Value="16"/></t:Excludes>`,
		},
		{
			name: "not",
			r:    Not(Exists(PathItemCategories)),
			want: `<t:Not><t:Exists><t:FieldURI FieldURI="item:Categories"/></t:Exists></t:Not>`,
		},
		{
			name: "and",
			r:    And(IsEqualTo(PathMessageIsRead, false), Exists(PathItemCategories)),
			want: `<t:And><t:IsEqualTo><t:FieldURI FieldURI="message:IsRead"/><t:FieldURIOrConstant><t:Constant Value="false"/></t:FieldURIOrConstant></t:IsEqualTo><t:Exists><t:FieldURI FieldURI="item:Categories"/></t:Exists></t:And>`,
		},
		{
			name: "indexed path",
			r:    IsEqualTo(PathContactEmailAddress1, "a@b.c"),
			want: `<t:IsEqualTo><t:IndexedFieldURI FieldURI="contacts:EmailAddress" FieldIndex="EmailAddress1"/><t:FieldURIOrConstant><t:Constant Value="a@b.c"/></t:FieldURIOrConstant></t:IsEqualTo>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.XML())
		})
	}
}

func TestRestriction_LogicalDropsEmptyOperands(t *testing.T) {
	leaf := Exists(PathItemSubject)

	assert.True(t, And(Restriction{}, Restriction{}).IsEmpty())
	assert.Equal(t, leaf.XML(), And(leaf, Restriction{}).XML())
	assert.Equal(t, leaf.XML(), Or(Restriction{}, leaf).XML())
	assert.True(t, Not(Restriction{}).IsEmpty())
}

func TestRestriction_Leaves(t *testing.T) {
	r := Or(
		And(Exists(PathItemSubject), Not(Exists(PathItemBody))),
		IsEqualTo(PathMessageIsRead, true),
		Contains(PathItemSubject, "x"),
	)
	assert.Equal(t, 4, r.Leaves())
	assert.Equal(t, 0, Restriction{}.Leaves())
}

func TestRestriction_Validate(t *testing.T) {
	t.Run("too many leaves", func(t *testing.T) {
		leaves := make([]Restriction, MaxRestrictionLeaves-1)
		for i := range leaves {
			leaves[i] = Exists(PathItemSubject)
		}
		r := Or(Exists(PathItemSubject), Exists(PathItemBody), leaves...)
		require.Equal(t, MaxRestrictionLeaves+1, r.Leaves())

		err := r.Validate()
		require.Error(t, err)
		assert.Equal(t, ErrorRestrictionTooLong, CodeOf(err))
	})

	t.Run("at the limit", func(t *testing.T) {
		leaves := make([]Restriction, MaxRestrictionLeaves-2)
		for i := range leaves {
			leaves[i] = Exists(PathItemSubject)
		}
		r := Or(Exists(PathItemSubject), Exists(PathItemBody), leaves...)
		assert.NoError(t, r.Validate())
	})

	t.Run("unsupported constant", func(t *testing.T) {
		r := And(Exists(PathItemSubject), IsEqualTo(PathItemSize, 1.5))
		assert.Error(t, r.Validate())
	})
}

func TestRestriction_Element(t *testing.T) {
	e, err := Exists(PathItemSubject).element()
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "Restriction", e.Tag)
	assert.Equal(t, "m", e.Space)

	e, err = Restriction{}.element()
	assert.NoError(t, err)
	assert.Nil(t, e)
}
