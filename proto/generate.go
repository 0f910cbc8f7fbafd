// Package proto holds the gRPC service definitions. Run go generate to
// refresh the stubs under gen/proto.
package proto

//go:generate protoc --proto_path=. --go_out=.. --go_opt=module=github.com/brunoqueiroz/curricula-admin --go-grpc_out=.. --go-grpc_opt=module=github.com/brunoqueiroz/curricula-admin curricula/v1/curricula.proto curricula/v1/admin.proto curricula/v1/ingestion.proto
