// Package wire defines the Onshape BTM wire-format types for feature
// payloads. The shapes here are reverse-engineered from known-working
// feature submissions; the remote service rejects deviations with a
// generic failure code, so field names, btType discriminators, and
// parameter ordering replicate observed payloads exactly. Parameters
// and queries are closed tagged-variant sets restricted to this
// package by marker methods.
package wire
