package vkdump

import (
	"reflect"
	"testing"
)

func TestSymbolTableCanonicalName(t *testing.T) {
	tests := []struct {
		v    ImageLayout
		want string
	}{
		{IMAGE_LAYOUT_UNDEFINED, "VK_IMAGE_LAYOUT_UNDEFINED"},
		{IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL, "VK_IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL"},
		// Promoted from KHR; the core name was registered first.
		{IMAGE_LAYOUT_READ_ONLY_OPTIMAL, "VK_IMAGE_LAYOUT_READ_ONLY_OPTIMAL"},
		{ImageLayout(424242), "VkImageLayout(424242)"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("ImageLayout(%d).String() = %q, want %q", int32(tt.v), got, tt.want)
		}
	}
}

func TestSymbolTableAliases(t *testing.T) {
	got := imageLayoutNames.Aliases(IMAGE_LAYOUT_READ_ONLY_OPTIMAL)
	want := []string{"VK_IMAGE_LAYOUT_READ_ONLY_OPTIMAL", "VK_IMAGE_LAYOUT_READ_ONLY_OPTIMAL_KHR"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Aliases = %v, want %v", got, want)
	}

	got[0] = "mutated"
	if name, _ := imageLayoutNames.Name(IMAGE_LAYOUT_READ_ONLY_OPTIMAL); name != want[0] {
		t.Errorf("Aliases leaked internal storage: canonical name is now %q", name)
	}
}

func TestSymbolTableNegativeValues(t *testing.T) {
	if got := OUT_OF_DATE.String(); got != "VK_ERROR_OUT_OF_DATE_KHR" {
		t.Errorf("OUT_OF_DATE = %q", got)
	}
	if got := Result(-77).String(); got != "VkResult(-77)" {
		t.Errorf("unknown result = %q", got)
	}
}

func TestSymbolTableFirstRegistrationWins(t *testing.T) {
	tbl := NewSymbolTable("VkExample",
		Symbol[int32]{1, "VK_EXAMPLE_ONE"},
		Symbol[int32]{1, "VK_EXAMPLE_ONE_KHR"},
		Symbol[int32]{2, "VK_EXAMPLE_TWO"},
	)
	if tbl.Len() != 2 {
		t.Errorf("Len = %d, want 2", tbl.Len())
	}
	if got := tbl.String(1); got != "VK_EXAMPLE_ONE" {
		t.Errorf("String(1) = %q", got)
	}
	if _, ok := tbl.Name(3); ok {
		t.Error("Name(3) reported a match")
	}
	if tbl.TypeName() != "VkExample" {
		t.Errorf("TypeName = %q", tbl.TypeName())
	}
}

func TestStructureTypeNames(t *testing.T) {
	if got := STRUCTURE_TYPE_IMAGE_FORMAT_LIST_CREATE_INFO.String(); got != "VK_STRUCTURE_TYPE_IMAGE_FORMAT_LIST_CREATE_INFO" {
		t.Errorf("got %q", got)
	}
	if got := StructureType(1000999999).String(); got != "VkStructureType(1000999999)" {
		t.Errorf("got %q", got)
	}
}
