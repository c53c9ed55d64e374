//go:build !hstrdebug

package hstr

const debugAssertions = false
