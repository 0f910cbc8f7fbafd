// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: curricula/v1/admin.proto

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
	AdminService_ListInstitutions_FullMethodName       = "/curricula.v1.AdminService/ListInstitutions"
	AdminService_CreateInstitution_FullMethodName      = "/curricula.v1.AdminService/CreateInstitution"
	AdminService_UpdateInstitution_FullMethodName      = "/curricula.v1.AdminService/UpdateInstitution"
	AdminService_DeleteInstitution_FullMethodName      = "/curricula.v1.AdminService/DeleteInstitution"
	AdminService_RestoreInstitution_FullMethodName     = "/curricula.v1.AdminService/RestoreInstitution"
	AdminService_ListInstitutionTypes_FullMethodName   = "/curricula.v1.AdminService/ListInstitutionTypes"
	AdminService_CreateInstitutionType_FullMethodName  = "/curricula.v1.AdminService/CreateInstitutionType"
	AdminService_UpdateInstitutionType_FullMethodName  = "/curricula.v1.AdminService/UpdateInstitutionType"
	AdminService_DeleteInstitutionType_FullMethodName  = "/curricula.v1.AdminService/DeleteInstitutionType"
	AdminService_RestoreInstitutionType_FullMethodName = "/curricula.v1.AdminService/RestoreInstitutionType"
	AdminService_ListUserRules_FullMethodName          = "/curricula.v1.AdminService/ListUserRules"
	AdminService_CreateUserRule_FullMethodName         = "/curricula.v1.AdminService/CreateUserRule"
	AdminService_UpdateUserRule_FullMethodName         = "/curricula.v1.AdminService/UpdateUserRule"
	AdminService_DeleteUserRule_FullMethodName         = "/curricula.v1.AdminService/DeleteUserRule"
	AdminService_RestoreUserRule_FullMethodName        = "/curricula.v1.AdminService/RestoreUserRule"
)

// AdminServiceClient is the client API for AdminService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AdminService manages institutions, institution types and user rules. Every
// mutation requires administrator credentials.
type AdminServiceClient interface {
	ListInstitutions(ctx context.Context, in *ListInstitutionsRequest, opts ...grpc.CallOption) (*ListInstitutionsResponse, error)
	CreateInstitution(ctx context.Context, in *CreateInstitutionRequest, opts ...grpc.CallOption) (*CreateInstitutionResponse, error)
	UpdateInstitution(ctx context.Context, in *UpdateInstitutionRequest, opts ...grpc.CallOption) (*UpdateInstitutionResponse, error)
	DeleteInstitution(ctx context.Context, in *DeleteInstitutionRequest, opts ...grpc.CallOption) (*DeleteInstitutionResponse, error)
	RestoreInstitution(ctx context.Context, in *RestoreInstitutionRequest, opts ...grpc.CallOption) (*RestoreInstitutionResponse, error)
	ListInstitutionTypes(ctx context.Context, in *ListInstitutionTypesRequest, opts ...grpc.CallOption) (*ListInstitutionTypesResponse, error)
	CreateInstitutionType(ctx context.Context, in *CreateInstitutionTypeRequest, opts ...grpc.CallOption) (*CreateInstitutionTypeResponse, error)
	UpdateInstitutionType(ctx context.Context, in *UpdateInstitutionTypeRequest, opts ...grpc.CallOption) (*UpdateInstitutionTypeResponse, error)
	DeleteInstitutionType(ctx context.Context, in *DeleteInstitutionTypeRequest, opts ...grpc.CallOption) (*DeleteInstitutionTypeResponse, error)
	RestoreInstitutionType(ctx context.Context, in *RestoreInstitutionTypeRequest, opts ...grpc.CallOption) (*RestoreInstitutionTypeResponse, error)
	ListUserRules(ctx context.Context, in *ListUserRulesRequest, opts ...grpc.CallOption) (*ListUserRulesResponse, error)
	CreateUserRule(ctx context.Context, in *CreateUserRuleRequest, opts ...grpc.CallOption) (*CreateUserRuleResponse, error)
	UpdateUserRule(ctx context.Context, in *UpdateUserRuleRequest, opts ...grpc.CallOption) (*UpdateUserRuleResponse, error)
	DeleteUserRule(ctx context.Context, in *DeleteUserRuleRequest, opts ...grpc.CallOption) (*DeleteUserRuleResponse, error)
	RestoreUserRule(ctx context.Context, in *RestoreUserRuleRequest, opts ...grpc.CallOption) (*RestoreUserRuleResponse, error)
}

type adminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAdminServiceClient(cc grpc.ClientConnInterface) AdminServiceClient {
	return &adminServiceClient{cc}
}

func (c *adminServiceClient) ListInstitutions(ctx context.Context, in *ListInstitutionsRequest, opts ...grpc.CallOption) (*ListInstitutionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInstitutionsResponse)
	err := c.cc.Invoke(ctx, AdminService_ListInstitutions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) CreateInstitution(ctx context.Context, in *CreateInstitutionRequest, opts ...grpc.CallOption) (*CreateInstitutionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateInstitutionResponse)
	err := c.cc.Invoke(ctx, AdminService_CreateInstitution_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) UpdateInstitution(ctx context.Context, in *UpdateInstitutionRequest, opts ...grpc.CallOption) (*UpdateInstitutionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateInstitutionResponse)
	err := c.cc.Invoke(ctx, AdminService_UpdateInstitution_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) DeleteInstitution(ctx context.Context, in *DeleteInstitutionRequest, opts ...grpc.CallOption) (*DeleteInstitutionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteInstitutionResponse)
	err := c.cc.Invoke(ctx, AdminService_DeleteInstitution_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) RestoreInstitution(ctx context.Context, in *RestoreInstitutionRequest, opts ...grpc.CallOption) (*RestoreInstitutionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RestoreInstitutionResponse)
	err := c.cc.Invoke(ctx, AdminService_RestoreInstitution_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) ListInstitutionTypes(ctx context.Context, in *ListInstitutionTypesRequest, opts ...grpc.CallOption) (*ListInstitutionTypesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInstitutionTypesResponse)
	err := c.cc.Invoke(ctx, AdminService_ListInstitutionTypes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) CreateInstitutionType(ctx context.Context, in *CreateInstitutionTypeRequest, opts ...grpc.CallOption) (*CreateInstitutionTypeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateInstitutionTypeResponse)
	err := c.cc.Invoke(ctx, AdminService_CreateInstitutionType_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) UpdateInstitutionType(ctx context.Context, in *UpdateInstitutionTypeRequest, opts ...grpc.CallOption) (*UpdateInstitutionTypeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateInstitutionTypeResponse)
	err := c.cc.Invoke(ctx, AdminService_UpdateInstitutionType_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) DeleteInstitutionType(ctx context.Context, in *DeleteInstitutionTypeRequest, opts ...grpc.CallOption) (*DeleteInstitutionTypeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteInstitutionTypeResponse)
	err := c.cc.Invoke(ctx, AdminService_DeleteInstitutionType_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) RestoreInstitutionType(ctx context.Context, in *RestoreInstitutionTypeRequest, opts ...grpc.CallOption) (*RestoreInstitutionTypeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RestoreInstitutionTypeResponse)
	err := c.cc.Invoke(ctx, AdminService_RestoreInstitutionType_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) ListUserRules(ctx context.Context, in *ListUserRulesRequest, opts ...grpc.CallOption) (*ListUserRulesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListUserRulesResponse)
	err := c.cc.Invoke(ctx, AdminService_ListUserRules_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) CreateUserRule(ctx context.Context, in *CreateUserRuleRequest, opts ...grpc.CallOption) (*CreateUserRuleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateUserRuleResponse)
	err := c.cc.Invoke(ctx, AdminService_CreateUserRule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) UpdateUserRule(ctx context.Context, in *UpdateUserRuleRequest, opts ...grpc.CallOption) (*UpdateUserRuleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateUserRuleResponse)
	err := c.cc.Invoke(ctx, AdminService_UpdateUserRule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) DeleteUserRule(ctx context.Context, in *DeleteUserRuleRequest, opts ...grpc.CallOption) (*DeleteUserRuleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteUserRuleResponse)
	err := c.cc.Invoke(ctx, AdminService_DeleteUserRule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) RestoreUserRule(ctx context.Context, in *RestoreUserRuleRequest, opts ...grpc.CallOption) (*RestoreUserRuleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RestoreUserRuleResponse)
	err := c.cc.Invoke(ctx, AdminService_RestoreUserRule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdminServiceServer is the server API for AdminService service.
// All implementations must embed UnimplementedAdminServiceServer
// for forward compatibility.
//
// AdminService manages institutions, institution types and user rules. Every
// mutation requires administrator credentials.
type AdminServiceServer interface {
	ListInstitutions(context.Context, *ListInstitutionsRequest) (*ListInstitutionsResponse, error)
	CreateInstitution(context.Context, *CreateInstitutionRequest) (*CreateInstitutionResponse, error)
	UpdateInstitution(context.Context, *UpdateInstitutionRequest) (*UpdateInstitutionResponse, error)
	DeleteInstitution(context.Context, *DeleteInstitutionRequest) (*DeleteInstitutionResponse, error)
	RestoreInstitution(context.Context, *RestoreInstitutionRequest) (*RestoreInstitutionResponse, error)
	ListInstitutionTypes(context.Context, *ListInstitutionTypesRequest) (*ListInstitutionTypesResponse, error)
	CreateInstitutionType(context.Context, *CreateInstitutionTypeRequest) (*CreateInstitutionTypeResponse, error)
	UpdateInstitutionType(context.Context, *UpdateInstitutionTypeRequest) (*UpdateInstitutionTypeResponse, error)
	DeleteInstitutionType(context.Context, *DeleteInstitutionTypeRequest) (*DeleteInstitutionTypeResponse, error)
	RestoreInstitutionType(context.Context, *RestoreInstitutionTypeRequest) (*RestoreInstitutionTypeResponse, error)
	ListUserRules(context.Context, *ListUserRulesRequest) (*ListUserRulesResponse, error)
	CreateUserRule(context.Context, *CreateUserRuleRequest) (*CreateUserRuleResponse, error)
	UpdateUserRule(context.Context, *UpdateUserRuleRequest) (*UpdateUserRuleResponse, error)
	DeleteUserRule(context.Context, *DeleteUserRuleRequest) (*DeleteUserRuleResponse, error)
	RestoreUserRule(context.Context, *RestoreUserRuleRequest) (*RestoreUserRuleResponse, error)
	mustEmbedUnimplementedAdminServiceServer()
}

// UnimplementedAdminServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAdminServiceServer struct{}

func (UnimplementedAdminServiceServer) ListInstitutions(context.Context, *ListInstitutionsRequest) (*ListInstitutionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInstitutions not implemented")
}
func (UnimplementedAdminServiceServer) CreateInstitution(context.Context, *CreateInstitutionRequest) (*CreateInstitutionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateInstitution not implemented")
}
func (UnimplementedAdminServiceServer) UpdateInstitution(context.Context, *UpdateInstitutionRequest) (*UpdateInstitutionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateInstitution not implemented")
}
func (UnimplementedAdminServiceServer) DeleteInstitution(context.Context, *DeleteInstitutionRequest) (*DeleteInstitutionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteInstitution not implemented")
}
func (UnimplementedAdminServiceServer) RestoreInstitution(context.Context, *RestoreInstitutionRequest) (*RestoreInstitutionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RestoreInstitution not implemented")
}
func (UnimplementedAdminServiceServer) ListInstitutionTypes(context.Context, *ListInstitutionTypesRequest) (*ListInstitutionTypesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInstitutionTypes not implemented")
}
func (UnimplementedAdminServiceServer) CreateInstitutionType(context.Context, *CreateInstitutionTypeRequest) (*CreateInstitutionTypeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateInstitutionType not implemented")
}
func (UnimplementedAdminServiceServer) UpdateInstitutionType(context.Context, *UpdateInstitutionTypeRequest) (*UpdateInstitutionTypeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateInstitutionType not implemented")
}
func (UnimplementedAdminServiceServer) DeleteInstitutionType(context.Context, *DeleteInstitutionTypeRequest) (*DeleteInstitutionTypeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteInstitutionType not implemented")
}
func (UnimplementedAdminServiceServer) RestoreInstitutionType(context.Context, *RestoreInstitutionTypeRequest) (*RestoreInstitutionTypeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RestoreInstitutionType not implemented")
}
func (UnimplementedAdminServiceServer) ListUserRules(context.Context, *ListUserRulesRequest) (*ListUserRulesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListUserRules not implemented")
}
func (UnimplementedAdminServiceServer) CreateUserRule(context.Context, *CreateUserRuleRequest) (*CreateUserRuleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateUserRule not implemented")
}
func (UnimplementedAdminServiceServer) UpdateUserRule(context.Context, *UpdateUserRuleRequest) (*UpdateUserRuleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateUserRule not implemented")
}
func (UnimplementedAdminServiceServer) DeleteUserRule(context.Context, *DeleteUserRuleRequest) (*DeleteUserRuleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteUserRule not implemented")
}
func (UnimplementedAdminServiceServer) RestoreUserRule(context.Context, *RestoreUserRuleRequest) (*RestoreUserRuleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RestoreUserRule not implemented")
}
func (UnimplementedAdminServiceServer) mustEmbedUnimplementedAdminServiceServer() {}
func (UnimplementedAdminServiceServer) testEmbeddedByValue()                      {}

// UnsafeAdminServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AdminServiceServer will
// result in compilation errors.
type UnsafeAdminServiceServer interface {
	mustEmbedUnimplementedAdminServiceServer()
}

func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	// If the following call pancis, it indicates UnimplementedAdminServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AdminService_ServiceDesc, srv)
}

func _AdminService_ListInstitutions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInstitutionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).ListInstitutions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_ListInstitutions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).ListInstitutions(ctx, req.(*ListInstitutionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_CreateInstitution_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateInstitutionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).CreateInstitution(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_CreateInstitution_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).CreateInstitution(ctx, req.(*CreateInstitutionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_UpdateInstitution_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateInstitutionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).UpdateInstitution(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_UpdateInstitution_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).UpdateInstitution(ctx, req.(*UpdateInstitutionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_DeleteInstitution_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteInstitutionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).DeleteInstitution(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_DeleteInstitution_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).DeleteInstitution(ctx, req.(*DeleteInstitutionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_RestoreInstitution_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RestoreInstitutionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).RestoreInstitution(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_RestoreInstitution_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).RestoreInstitution(ctx, req.(*RestoreInstitutionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_ListInstitutionTypes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInstitutionTypesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).ListInstitutionTypes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_ListInstitutionTypes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).ListInstitutionTypes(ctx, req.(*ListInstitutionTypesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_CreateInstitutionType_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateInstitutionTypeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).CreateInstitutionType(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_CreateInstitutionType_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).CreateInstitutionType(ctx, req.(*CreateInstitutionTypeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_UpdateInstitutionType_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateInstitutionTypeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).UpdateInstitutionType(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_UpdateInstitutionType_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).UpdateInstitutionType(ctx, req.(*UpdateInstitutionTypeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_DeleteInstitutionType_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteInstitutionTypeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).DeleteInstitutionType(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_DeleteInstitutionType_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).DeleteInstitutionType(ctx, req.(*DeleteInstitutionTypeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_RestoreInstitutionType_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RestoreInstitutionTypeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).RestoreInstitutionType(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_RestoreInstitutionType_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).RestoreInstitutionType(ctx, req.(*RestoreInstitutionTypeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_ListUserRules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListUserRulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).ListUserRules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_ListUserRules_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).ListUserRules(ctx, req.(*ListUserRulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_CreateUserRule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateUserRuleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).CreateUserRule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_CreateUserRule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).CreateUserRule(ctx, req.(*CreateUserRuleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_UpdateUserRule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateUserRuleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).UpdateUserRule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_UpdateUserRule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).UpdateUserRule(ctx, req.(*UpdateUserRuleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_DeleteUserRule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteUserRuleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).DeleteUserRule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_DeleteUserRule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).DeleteUserRule(ctx, req.(*DeleteUserRuleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_RestoreUserRule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RestoreUserRuleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).RestoreUserRule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_RestoreUserRule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).RestoreUserRule(ctx, req.(*RestoreUserRuleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AdminService_ServiceDesc is the grpc.ServiceDesc for AdminService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AdminService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "curricula.v1.AdminService",
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListInstitutions",
			Handler:    _AdminService_ListInstitutions_Handler,
		},
		{
			MethodName: "CreateInstitution",
			Handler:    _AdminService_CreateInstitution_Handler,
		},
		{
			MethodName: "UpdateInstitution",
			Handler:    _AdminService_UpdateInstitution_Handler,
		},
		{
			MethodName: "DeleteInstitution",
			Handler:    _AdminService_DeleteInstitution_Handler,
		},
		{
			MethodName: "RestoreInstitution",
			Handler:    _AdminService_RestoreInstitution_Handler,
		},
		{
			MethodName: "ListInstitutionTypes",
			Handler:    _AdminService_ListInstitutionTypes_Handler,
		},
		{
			MethodName: "CreateInstitutionType",
			Handler:    _AdminService_CreateInstitutionType_Handler,
		},
		{
			MethodName: "UpdateInstitutionType",
			Handler:    _AdminService_UpdateInstitutionType_Handler,
		},
		{
			MethodName: "DeleteInstitutionType",
			Handler:    _AdminService_DeleteInstitutionType_Handler,
		},
		{
			MethodName: "RestoreInstitutionType",
			Handler:    _AdminService_RestoreInstitutionType_Handler,
		},
		{
			MethodName: "ListUserRules",
			Handler:    _AdminService_ListUserRules_Handler,
		},
		{
			MethodName: "CreateUserRule",
			Handler:    _AdminService_CreateUserRule_Handler,
		},
		{
			MethodName: "UpdateUserRule",
			Handler:    _AdminService_UpdateUserRule_Handler,
		},
		{
			MethodName: "DeleteUserRule",
			Handler:    _AdminService_DeleteUserRule_Handler,
		},
		{
			MethodName: "RestoreUserRule",
			Handler:    _AdminService_RestoreUserRule_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "curricula/v1/admin.proto",
}
