package presentvk

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

// Failure kinds, one per bring-up or per-frame stage. Match with errors.Is.
var (
	ErrContextCreationFailed           = stderrors.New("context creation failed")
	ErrDiagnosticChannelCreationFailed = stderrors.New("diagnostic channel creation failed")
	ErrNoSuitableDevice                = stderrors.New("no suitable physical device")
	ErrDeviceCreationFailed            = stderrors.New("device creation failed")
	ErrCommandPoolCreationFailed       = stderrors.New("command pool creation failed")
	ErrSurfaceCreationFailed           = stderrors.New("surface creation failed")
	ErrSwapchainCreationFailed         = stderrors.New("swapchain creation failed")
	ErrImageViewCreationFailed         = stderrors.New("image view creation failed")
	ErrShaderModuleCreationFailed      = stderrors.New("shader module creation failed")
	ErrPipelineLayoutCreationFailed    = stderrors.New("pipeline layout creation failed")
	ErrRenderPassCreationFailed        = stderrors.New("render pass creation failed")
	ErrGraphicsPipelineCreationFailed  = stderrors.New("graphics pipeline creation failed")
	ErrFramebufferCreationFailed       = stderrors.New("framebuffer creation failed")
	ErrSemaphoreCreationFailed         = stderrors.New("semaphore creation failed")
	ErrCommandBufferAllocationFailed   = stderrors.New("command buffer allocation failed")
	ErrCommandBufferRecordingFailed    = stderrors.New("command buffer recording failed")
	ErrAcquireFailed                   = stderrors.New("acquire failed")
	ErrSubmitFailed                    = stderrors.New("submit failed")
	ErrPresentFailed                   = stderrors.New("present failed")
	ErrWaitIdleFailed                  = stderrors.New("wait idle failed")
)

// ResultError carries the vk.Result a driver call returned alongside the
// failure kind it was reported as.
type ResultError struct {
	Kind   error
	Result vk.Result
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("%v: vulkan error: %v (%d)", e.Kind, vk.Error(e.Result), e.Result)
}

func (e *ResultError) Unwrap() error {
	return e.Kind
}

func isError(ret vk.Result) bool {
	return ret != vk.Success
}

// newError reports ret as a failure of the given kind with the caller's stack attached.
func newError(kind error, ret vk.Result) error {
	return errors.WithStack(&ResultError{Kind: kind, Result: ret})
}

// IsResult reports whether err was caused by a driver call returning ret.
func IsResult(err error, ret vk.Result) bool {
	var re *ResultError
	if stderrors.As(err, &re) {
		return re.Result == ret
	}
	return false
}
