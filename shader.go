package presentvk

import (
	"os"

	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

// Default locations of the compiled SPIR-V blobs.
const (
	DefaultVertexShaderPath   = "shader.vert.spv"
	DefaultFragmentShaderPath = "shader.frag.spv"
)

// ShaderBlobs holds the compiled vertex and fragment stages.
type ShaderBlobs struct {
	Vertex   []byte
	Fragment []byte
}

// LoadShaderBlobs reads both compiled stages whole.
func LoadShaderBlobs(vertPath, fragPath string) (ShaderBlobs, error) {
	vert, err := os.ReadFile(vertPath)
	if err != nil {
		return ShaderBlobs{}, errors.Wrap(err, "read vertex shader")
	}
	frag, err := os.ReadFile(fragPath)
	if err != nil {
		return ShaderBlobs{}, errors.Wrap(err, "read fragment shader")
	}
	return ShaderBlobs{Vertex: vert, Fragment: frag}, nil
}

// newShaderModule wraps a SPIR-V blob. An empty blob is rejected before the
// driver sees it.
func newShaderModule(d Driver, device vk.Device, code []byte) (vk.ShaderModule, error) {
	if len(code) == 0 {
		return vk.NullShaderModule, errors.Wrap(ErrShaderModuleCreationFailed, "empty shader blob")
	}
	var module vk.ShaderModule
	ret := d.CreateShaderModule(device, &vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(code)),
		PCode:    sliceUint32(code),
	}, &module)
	if isError(ret) {
		return vk.NullShaderModule, newError(ErrShaderModuleCreationFailed, ret)
	}
	return module, nil
}
