package presentvk

import "unsafe"

// safeString returns s terminated with a NUL byte, as the driver expects.
func safeString(s string) string {
	if len(s) == 0 {
		return "\x00"
	}
	if s[len(s)-1] != '\x00' {
		return s + "\x00"
	}
	return s
}

func safeStrings(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	for i := range list {
		out[i] = safeString(list[i])
	}
	return out
}

// sliceUint32 repacks a SPIR-V blob into the word slice vk.ShaderModuleCreateInfo takes.
// A trailing partial word is zero padded.
func sliceUint32(data []byte) []uint32 {
	if len(data) == 0 {
		return nil
	}
	words := make([]uint32, (len(data)+3)/4)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), len(words)*4), data)
	return words
}
