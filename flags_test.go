package vkdump

import (
	"reflect"
	"testing"
)

func TestFlagRender(t *testing.T) {
	tests := []struct {
		name string
		v    BufferUsageFlags
		want string
	}{
		{"zero", 0, "0"},
		{"single", BUFFER_USAGE_TRANSFER_SRC_BIT, "VK_BUFFER_USAGE_TRANSFER_SRC_BIT"},
		{
			"ascending",
			BUFFER_USAGE_VERTEX_BUFFER_BIT | BUFFER_USAGE_TRANSFER_SRC_BIT | BUFFER_USAGE_UNIFORM_BUFFER_BIT,
			"VK_BUFFER_USAGE_TRANSFER_SRC_BIT | VK_BUFFER_USAGE_UNIFORM_BUFFER_BIT | VK_BUFFER_USAGE_VERTEX_BUFFER_BIT",
		},
		{"unnamed bit", 0x40000000, "0x40000000"},
		{
			"named and unnamed",
			BUFFER_USAGE_TRANSFER_SRC_BIT | 0x40000000,
			"VK_BUFFER_USAGE_TRANSFER_SRC_BIT | 0x40000000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlagCompositeMasksSplit(t *testing.T) {
	all := SHADER_STAGE_VERTEX_BIT | SHADER_STAGE_FRAGMENT_BIT
	want := "VK_SHADER_STAGE_VERTEX_BIT | VK_SHADER_STAGE_FRAGMENT_BIT"
	if got := all.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := (CULL_MODE_FRONT_BIT | CULL_MODE_BACK_BIT).String(); got != "VK_CULL_MODE_FRONT_BIT | VK_CULL_MODE_BACK_BIT" {
		t.Errorf("front and back = %q", got)
	}
}

func TestFlagReservedMask(t *testing.T) {
	if got := ShaderModuleCreateFlags(0).String(); got != "0" {
		t.Errorf("zero = %q", got)
	}
	if got := ShaderModuleCreateFlags(0x3).String(); got != "0x1 | 0x2" {
		t.Errorf("stray bits = %q", got)
	}
}

func TestFlagTable64(t *testing.T) {
	tbl := NewFlagTable("VkExampleFlagBits2",
		Symbol[uint64]{1, "VK_EXAMPLE_LOW_BIT"},
		Symbol[uint64]{1 << 40, "VK_EXAMPLE_HIGH_BIT"},
	)
	got := tbl.Names(1<<40 | 1<<63 | 1)
	want := []string{"VK_EXAMPLE_LOW_BIT", "VK_EXAMPLE_HIGH_BIT", "0x8000000000000000"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
	if tbl.TypeName() != "VkExampleFlagBits2" {
		t.Errorf("TypeName = %q", tbl.TypeName())
	}
}
