// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: curricula/v1/curricula.proto

package curriculav1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	CurriculumService_ListStandards_FullMethodName   = "/curricula.v1.CurriculumService/ListStandards"
	CurriculumService_CreateStandard_FullMethodName  = "/curricula.v1.CurriculumService/CreateStandard"
	CurriculumService_UpdateStandard_FullMethodName  = "/curricula.v1.CurriculumService/UpdateStandard"
	CurriculumService_DeleteStandard_FullMethodName  = "/curricula.v1.CurriculumService/DeleteStandard"
	CurriculumService_RestoreStandard_FullMethodName = "/curricula.v1.CurriculumService/RestoreStandard"
	CurriculumService_ExportStandards_FullMethodName = "/curricula.v1.CurriculumService/ExportStandards"
)

// CurriculumServiceClient is the client API for CurriculumService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CurriculumService manages the curriculum standards catalog.
type CurriculumServiceClient interface {
	ListStandards(ctx context.Context, in *ListStandardsRequest, opts ...grpc.CallOption) (*ListStandardsResponse, error)
	CreateStandard(ctx context.Context, in *CreateStandardRequest, opts ...grpc.CallOption) (*CreateStandardResponse, error)
	UpdateStandard(ctx context.Context, in *UpdateStandardRequest, opts ...grpc.CallOption) (*UpdateStandardResponse, error)
	DeleteStandard(ctx context.Context, in *DeleteStandardRequest, opts ...grpc.CallOption) (*DeleteStandardResponse, error)
	RestoreStandard(ctx context.Context, in *RestoreStandardRequest, opts ...grpc.CallOption) (*RestoreStandardResponse, error)
	ExportStandards(ctx context.Context, in *ExportStandardsRequest, opts ...grpc.CallOption) (*ExportStandardsResponse, error)
}

type curriculumServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCurriculumServiceClient(cc grpc.ClientConnInterface) CurriculumServiceClient {
	return &curriculumServiceClient{cc}
}

func (c *curriculumServiceClient) ListStandards(ctx context.Context, in *ListStandardsRequest, opts ...grpc.CallOption) (*ListStandardsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListStandardsResponse)
	err := c.cc.Invoke(ctx, CurriculumService_ListStandards_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *curriculumServiceClient) CreateStandard(ctx context.Context, in *CreateStandardRequest, opts ...grpc.CallOption) (*CreateStandardResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateStandardResponse)
	err := c.cc.Invoke(ctx, CurriculumService_CreateStandard_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *curriculumServiceClient) UpdateStandard(ctx context.Context, in *UpdateStandardRequest, opts ...grpc.CallOption) (*UpdateStandardResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateStandardResponse)
	err := c.cc.Invoke(ctx, CurriculumService_UpdateStandard_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *curriculumServiceClient) DeleteStandard(ctx context.Context, in *DeleteStandardRequest, opts ...grpc.CallOption) (*DeleteStandardResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteStandardResponse)
	err := c.cc.Invoke(ctx, CurriculumService_DeleteStandard_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *curriculumServiceClient) RestoreStandard(ctx context.Context, in *RestoreStandardRequest, opts ...grpc.CallOption) (*RestoreStandardResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RestoreStandardResponse)
	err := c.cc.Invoke(ctx, CurriculumService_RestoreStandard_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *curriculumServiceClient) ExportStandards(ctx context.Context, in *ExportStandardsRequest, opts ...grpc.CallOption) (*ExportStandardsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportStandardsResponse)
	err := c.cc.Invoke(ctx, CurriculumService_ExportStandards_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CurriculumServiceServer is the server API for CurriculumService service.
// All implementations must embed UnimplementedCurriculumServiceServer
// for forward compatibility.
//
// CurriculumService manages the curriculum standards catalog.
type CurriculumServiceServer interface {
	ListStandards(context.Context, *ListStandardsRequest) (*ListStandardsResponse, error)
	CreateStandard(context.Context, *CreateStandardRequest) (*CreateStandardResponse, error)
	UpdateStandard(context.Context, *UpdateStandardRequest) (*UpdateStandardResponse, error)
	DeleteStandard(context.Context, *DeleteStandardRequest) (*DeleteStandardResponse, error)
	RestoreStandard(context.Context, *RestoreStandardRequest) (*RestoreStandardResponse, error)
	ExportStandards(context.Context, *ExportStandardsRequest) (*ExportStandardsResponse, error)
	mustEmbedUnimplementedCurriculumServiceServer()
}

// UnimplementedCurriculumServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCurriculumServiceServer struct{}

func (UnimplementedCurriculumServiceServer) ListStandards(context.Context, *ListStandardsRequest) (*ListStandardsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListStandards not implemented")
}
func (UnimplementedCurriculumServiceServer) CreateStandard(context.Context, *CreateStandardRequest) (*CreateStandardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateStandard not implemented")
}
func (UnimplementedCurriculumServiceServer) UpdateStandard(context.Context, *UpdateStandardRequest) (*UpdateStandardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateStandard not implemented")
}
func (UnimplementedCurriculumServiceServer) DeleteStandard(context.Context, *DeleteStandardRequest) (*DeleteStandardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteStandard not implemented")
}
func (UnimplementedCurriculumServiceServer) RestoreStandard(context.Context, *RestoreStandardRequest) (*RestoreStandardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RestoreStandard not implemented")
}
func (UnimplementedCurriculumServiceServer) ExportStandards(context.Context, *ExportStandardsRequest) (*ExportStandardsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportStandards not implemented")
}
func (UnimplementedCurriculumServiceServer) mustEmbedUnimplementedCurriculumServiceServer() {}
func (UnimplementedCurriculumServiceServer) testEmbeddedByValue()                           {}

// UnsafeCurriculumServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CurriculumServiceServer will
// result in compilation errors.
type UnsafeCurriculumServiceServer interface {
	mustEmbedUnimplementedCurriculumServiceServer()
}

func RegisterCurriculumServiceServer(s grpc.ServiceRegistrar, srv CurriculumServiceServer) {
	// If the following call pancis, it indicates UnimplementedCurriculumServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CurriculumService_ServiceDesc, srv)
}

func _CurriculumService_ListStandards_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListStandardsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CurriculumServiceServer).ListStandards(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CurriculumService_ListStandards_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CurriculumServiceServer).ListStandards(ctx, req.(*ListStandardsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CurriculumService_CreateStandard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateStandardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CurriculumServiceServer).CreateStandard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CurriculumService_CreateStandard_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CurriculumServiceServer).CreateStandard(ctx, req.(*CreateStandardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CurriculumService_UpdateStandard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateStandardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CurriculumServiceServer).UpdateStandard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CurriculumService_UpdateStandard_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CurriculumServiceServer).UpdateStandard(ctx, req.(*UpdateStandardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CurriculumService_DeleteStandard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteStandardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CurriculumServiceServer).DeleteStandard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CurriculumService_DeleteStandard_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CurriculumServiceServer).DeleteStandard(ctx, req.(*DeleteStandardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CurriculumService_RestoreStandard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RestoreStandardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CurriculumServiceServer).RestoreStandard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CurriculumService_RestoreStandard_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CurriculumServiceServer).RestoreStandard(ctx, req.(*RestoreStandardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CurriculumService_ExportStandards_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportStandardsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CurriculumServiceServer).ExportStandards(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CurriculumService_ExportStandards_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CurriculumServiceServer).ExportStandards(ctx, req.(*ExportStandardsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CurriculumService_ServiceDesc is the grpc.ServiceDesc for CurriculumService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CurriculumService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "curricula.v1.CurriculumService",
	HandlerType: (*CurriculumServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListStandards",
			Handler:    _CurriculumService_ListStandards_Handler,
		},
		{
			MethodName: "CreateStandard",
			Handler:    _CurriculumService_CreateStandard_Handler,
		},
		{
			MethodName: "UpdateStandard",
			Handler:    _CurriculumService_UpdateStandard_Handler,
		},
		{
			MethodName: "DeleteStandard",
			Handler:    _CurriculumService_DeleteStandard_Handler,
		},
		{
			MethodName: "RestoreStandard",
			Handler:    _CurriculumService_RestoreStandard_Handler,
		},
		{
			MethodName: "ExportStandards",
			Handler:    _CurriculumService_ExportStandards_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "curricula/v1/curricula.proto",
}
