//go:build packeddebug

package packed

// debugAssertions enables checks that are too costly for release builds.
const debugAssertions = true
