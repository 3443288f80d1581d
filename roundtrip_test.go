package vkdump

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"testing"
)

// populate sets every exported field reachable from v to a distinct nonzero
// value. Slices get two elements, pointers a fresh populated target. Counts
// and sizes end up larger than the storage they describe, so every element
// is printed. pNext links stay nil.
type populate struct {
	seed uint64
}

func (f *populate) next() uint64 {
	f.seed++
	return f.seed
}

func (f *populate) fill(v reflect.Value, depth int) {
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				f.fill(v.Field(i), depth)
			}
		}
	case reflect.Pointer:
		if depth > 4 {
			return
		}
		v.Set(reflect.New(v.Type().Elem()))
		f.fill(v.Elem(), depth+1)
	case reflect.Slice:
		s := reflect.MakeSlice(v.Type(), 2, 2)
		for i := 0; i < s.Len(); i++ {
			f.fill(s.Index(i), depth+1)
		}
		v.Set(s)
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			f.fill(v.Index(i), depth)
		}
	case reflect.String:
		v.SetString(fmt.Sprintf("s%d", f.next()))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(float64(f.next()) + 0.5)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		v.SetInt(int64(f.next()))
	case reflect.Uint8:
		v.SetUint(f.next() % 251)
	case reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr:
		if v.Type() == bool32Type {
			v.SetUint(f.next() % 2)
			return
		}
		v.SetUint(f.next())
	}
}

var (
	bool32Type = reflect.TypeOf(Bool32(0))
	bytesType  = reflect.TypeOf([]byte(nil))
)

// leafKey identifies a decoded JSON scalar.
func leafKey(v any) string {
	return fmt.Sprintf("%T:%v", v, v)
}

// wantLeaves collects the JSON scalar each field of v should print as, under
// the HandleAddress policy.
func wantLeaves(v reflect.Value, field string, out map[string]int) {
	if v.Kind() == reflect.Interface {
		return
	}
	if v.Type() == bytesType {
		if !v.IsNil() {
			out[leafKey(base64.StdEncoding.EncodeToString(v.Bytes()))]++
		}
		return
	}
	if v.Type() == bool32Type {
		out[leafKey(Bool32(v.Uint()) == TRUE)]++
		return
	}
	switch x := v.Interface().(type) {
	case Handle:
		out[leafKey(fmt.Sprintf("0x%016x", x.HandleValue()))]++
		return
	case fmt.Stringer:
		out[leafKey(x.String())]++
		return
	}
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if sf := v.Type().Field(i); sf.IsExported() {
				wantLeaves(v.Field(i), sf.Name, out)
			}
		}
	case reflect.Pointer:
		if !v.IsNil() {
			wantLeaves(v.Elem(), field, out)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			wantLeaves(v.Index(i), field, out)
		}
	case reflect.String:
		out[leafKey(v.String())]++
	case reflect.Float32, reflect.Float64:
		out[leafKey(v.Float())]++
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		out[leafKey(float64(v.Int()))]++
	case reflect.Uintptr:
		out[leafKey(fmt.Sprintf("0x%016x", v.Uint()))]++
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		if field == "ObjectHandle" {
			out[leafKey(fmt.Sprintf("0x%016x", v.Uint()))]++
			return
		}
		out[leafKey(float64(v.Uint()))]++
	}
}

// gotLeaves collects every scalar of a decoded JSON document.
func gotLeaves(v any, out map[string]int) {
	switch x := v.(type) {
	case map[string]any:
		for _, e := range x {
			gotLeaves(e, out)
		}
	case []any:
		for _, e := range x {
			gotLeaves(e, out)
		}
	case nil:
	default:
		out[leafKey(x)]++
	}
}

func TestPopulatedStructuresRoundTrip(t *testing.T) {
	for _, s := range zeroStructures() {
		name := reflect.TypeOf(s).Elem().Name()
		t.Run(name, func(t *testing.T) {
			f := &populate{seed: 100}
			f.fill(reflect.ValueOf(s).Elem(), 0)

			out := mustMarshal(t, s, WithHandlePolicy(HandleAddress))
			doc, ok := checkJSON(t, out).(map[string]any)
			if !ok {
				t.Fatalf("top level is not an object:\n%s", out)
			}
			if got := doc["sType"]; got != s.StructureType().String() {
				t.Errorf("sType = %v, want %s", got, s.StructureType())
			}

			want := map[string]int{}
			wantLeaves(reflect.ValueOf(s).Elem(), "", want)
			got := map[string]int{}
			gotLeaves(doc, got)
			for k, n := range want {
				if got[k] < n {
					t.Errorf("%s: decoded %d times, want at least %d", k, got[k], n)
				}
			}
			if t.Failed() {
				t.Logf("output:\n%s", out)
			}
		})
	}
}

func TestPopulatedStructureFields(t *testing.T) {
	info := &WriteDescriptorSet{
		DstSet:          DescriptorSet(0x44),
		DstBinding:      3,
		DescriptorCount: 2,
		DescriptorType:  DESCRIPTOR_TYPE_STORAGE_BUFFER,
		BufferInfo: []DescriptorBufferInfo{
			{Buffer: Buffer(0x10), Offset: 0, Range: 256},
			{Buffer: Buffer(0x11), Offset: 256, Range: 512},
		},
	}
	doc := checkJSON(t, mustMarshal(t, info, WithHandlePolicy(HandleAddress))).(map[string]any)

	if doc["dstSet"] != "0x0000000000000044" {
		t.Errorf("dstSet = %v", doc["dstSet"])
	}
	if doc["descriptorType"] != "VK_DESCRIPTOR_TYPE_STORAGE_BUFFER" {
		t.Errorf("descriptorType = %v", doc["descriptorType"])
	}
	if doc["pImageInfo"] != "NULL" || doc["pTexelBufferView"] != "NULL" {
		t.Errorf("unused arrays = %v, %v", doc["pImageInfo"], doc["pTexelBufferView"])
	}
	infos, ok := doc["pBufferInfo"].([]any)
	if !ok || len(infos) != 2 {
		t.Fatalf("pBufferInfo = %v", doc["pBufferInfo"])
	}
	second := infos[1].(map[string]any)
	if second["buffer"] != "0x0000000000000011" || second["offset"] != float64(256) || second["range"] != float64(512) {
		t.Errorf("pBufferInfo[1] = %v", second)
	}
}
