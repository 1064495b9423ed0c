package numio

// Uint128 is an unsigned 128-bit integer split into two 64-bit halves.
// Go has no native 128-bit integer type; Hi holds the most significant
// bits regardless of the byte order the value was decoded with.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed 128-bit integer in two's complement, split into two
// 64-bit halves. The sign lives in Hi.
type Int128 struct {
	Hi int64
	Lo uint64
}
