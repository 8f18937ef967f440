// Package detection exposes the session manager over gRPC. The Server
// translates between protobuf messages and domain types and maps domain
// errors onto gRPC status codes; all business logic lives behind the
// Service interface.
package detection
