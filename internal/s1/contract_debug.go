//go:build s1debug

package s1

const contractChecks = true
