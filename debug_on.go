//go:build hstrdebug

package hstr

// debugAssertions enables round-trip checks after every atom construction.
const debugAssertions = true
