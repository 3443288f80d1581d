package vkdump

import (
	"os"
	"path/filepath"
	"testing"
)

// Set UPDATE_GOLDEN=1 to rewrite testdata/golden from the current output.
var updateGolden = os.Getenv("UPDATE_GOLDEN") != ""

func goldenCases() map[string]Structure {
	return map[string]Structure{
		"instance_create_info": &InstanceCreateInfo{
			Next: &DebugUtilsMessengerCreateInfoEXT{
				MessageSeverity: DEBUG_UTILS_MESSAGE_SEVERITY_ERROR_BIT_EXT,
				MessageType:     DEBUG_UTILS_MESSAGE_TYPE_VALIDATION_BIT_EXT,
			},
			ApplicationInfo: &ApplicationInfo{
				ApplicationName: "demo",
				ApiVersion:      ApiVersion_1_3,
			},
			EnabledExtensionCount: 1,
			EnabledExtensionNames: []string{"VK_EXT_debug_utils"},
		},
		"image_create_info": &ImageCreateInfo{
			Next: &ImageFormatListCreateInfo{
				ViewFormatCount: 2,
				ViewFormats:     []Format{FORMAT_R8G8B8A8_UNORM, FORMAT_R8G8B8A8_SRGB},
			},
			Flags:         IMAGE_CREATE_MUTABLE_FORMAT_BIT,
			ImageType:     IMAGE_TYPE_2D,
			Format:        FORMAT_R8G8B8A8_UNORM,
			Extent:        Extent3D{Width: 256, Height: 256, Depth: 1},
			MipLevels:     9,
			ArrayLayers:   1,
			Samples:       SAMPLE_COUNT_1_BIT,
			Tiling:        IMAGE_TILING_OPTIMAL,
			Usage:         IMAGE_USAGE_SAMPLED_BIT | IMAGE_USAGE_TRANSFER_DST_BIT,
			SharingMode:   SHARING_MODE_EXCLUSIVE,
			InitialLayout: IMAGE_LAYOUT_UNDEFINED,
		},
	}
}

func TestGolden(t *testing.T) {
	for name, s := range goldenCases() {
		t.Run(name, func(t *testing.T) {
			got := mustMarshal(t, s)
			checkJSON(t, got)

			path := filepath.Join("testdata", "golden", name+".json")
			if updateGolden {
				if err := os.WriteFile(path, got, 0o644); err != nil {
					t.Fatal(err)
				}
				return
			}
			want, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("%v (run with UPDATE_GOLDEN=1 to create it)", err)
			}
			checkOutput(t, got, string(want))
		})
	}
}
