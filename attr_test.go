/* Package ipp implements the IPP core protocol in pure Go.
 *
 * Attribute tests
 */

package ipp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttributesEqual(t *testing.T) {
	tests := []struct {
		a1, a2 Attributes
		equal  bool
	}{
		{nil, nil, true},
		{Attributes{}, Attributes{}, true},
		{Attributes{}, nil, true},
		{
			Attributes{MakeAttribute("attr1", TagInteger, Integer(0))},
			Attributes{},
			false,
		},
		{
			Attributes{MakeAttribute("attr1", TagInteger, Integer(0))},
			Attributes{MakeAttribute("attr1", TagInteger, Integer(0))},
			true,
		},
		{
			Attributes{MakeAttribute("attr1", TagInteger, Integer(0))},
			Attributes{MakeAttribute("attr1", TagInteger, Integer(1))},
			false,
		},
		{
			Attributes{MakeAttribute("attr1", TagInteger, Integer(0))},
			Attributes{MakeAttribute("attr1", TagEnum, Integer(0))},
			false,
		},
		{
			Attributes{
				MakeAttribute("attr1", TagString, String("hello")),
				MakeAttribute("attr2", TagString, String("world")),
			},
			Attributes{
				MakeAttribute("attr2", TagString, String("world")),
				MakeAttribute("attr1", TagString, String("hello")),
			},
			false,
		},
	}

	for _, test := range tests {
		require.Equal(t, test.equal, test.a1.Equal(test.a2),
			"Attributes.Equal(%#v, %#v)", test.a1, test.a2)
	}
}

func TestAttributesAdd(t *testing.T) {
	attrs := Attributes{}
	attrs.Add(MakeAttribute("attr1", TagString, String("hello")))
	attrs.Add(MakeAttribute("attr2", TagInteger, Integer(1)))

	want := Attributes{
		Attribute{Name: "attr1", Values: Values{{TagString, String("hello")}}},
		Attribute{Name: "attr2", Values: Values{{TagInteger, Integer(1)}}},
	}

	require.True(t, attrs.Equal(want), "Attributes.Add() produced %#v, want %#v", attrs, want)
}

func TestMakeAttribute(t *testing.T) {
	a1 := Attribute{
		Name:   "attr",
		Values: Values{{TagInteger, Integer(1)}},
	}
	a2 := MakeAttribute("attr", TagInteger, Integer(1))

	require.True(t, a1.Equal(a2), "MakeAttribute() = %#v, want %#v", a2, a1)
}

func TestAttributeAddValue(t *testing.T) {
	attr := MakeAttribute("sides-supported", TagKeyword, String("one-sided"))
	attr.AddValue(TagKeyword, String("two-sided-long-edge"))

	want := Attribute{
		Name: "sides-supported",
		Values: Values{
			{TagKeyword, String("one-sided")},
			{TagKeyword, String("two-sided-long-edge")},
		},
	}

	require.True(t, attr.Equal(want), "Attribute.AddValue() produced %#v, want %#v", attr, want)
}

func TestAttributeEqual(t *testing.T) {
	a1 := MakeAttribute("attr", TagInteger, Integer(1))
	a2 := MakeAttribute("attr", TagInteger, Integer(1))
	a3 := MakeAttribute("other", TagInteger, Integer(1))

	require.True(t, a1.Equal(a2))
	require.False(t, a1.Equal(a3))
}
