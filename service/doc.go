// Package service owns the ordered set at runtime. SetService is the only
// write entry point: it serializes mutations, assigns revisions to accepted
// insertions and hands them to an optional event publisher. Transports such
// as gRPC sit on top of it.
package service
