//go:build !packeddebug

package packed

const debugAssertions = false
