// Package v1alpha1 holds the generated layout.v1alpha1 messages and gRPC
// stubs. The source is proto/layout/v1alpha1/layout.proto.
package v1alpha1

//go:generate sh -c "cd ../../../proto && buf generate"
