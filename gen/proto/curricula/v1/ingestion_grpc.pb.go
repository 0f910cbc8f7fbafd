// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: curricula/v1/ingestion.proto

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
	IngestionService_ExtractDocument_FullMethodName = "/curricula.v1.IngestionService/ExtractDocument"
	IngestionService_GetOutcome_FullMethodName      = "/curricula.v1.IngestionService/GetOutcome"
	IngestionService_ToggleCandidate_FullMethodName = "/curricula.v1.IngestionService/ToggleCandidate"
	IngestionService_ToggleAll_FullMethodName       = "/curricula.v1.IngestionService/ToggleAll"
	IngestionService_SelectAll_FullMethodName       = "/curricula.v1.IngestionService/SelectAll"
	IngestionService_SelectNone_FullMethodName      = "/curricula.v1.IngestionService/SelectNone"
	IngestionService_CommitSelected_FullMethodName  = "/curricula.v1.IngestionService/CommitSelected"
	IngestionService_DiscardOutcome_FullMethodName  = "/curricula.v1.IngestionService/DiscardOutcome"
)

// IngestionServiceClient is the client API for IngestionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// IngestionService runs the PDF extraction pipeline and the review flow over
// its latest outcome. One extraction is in flight at a time; a new upload
// replaces the previous outcome and its selection.
type IngestionServiceClient interface {
	ExtractDocument(ctx context.Context, in *ExtractDocumentRequest, opts ...grpc.CallOption) (*ExtractDocumentResponse, error)
	GetOutcome(ctx context.Context, in *GetOutcomeRequest, opts ...grpc.CallOption) (*GetOutcomeResponse, error)
	ToggleCandidate(ctx context.Context, in *ToggleCandidateRequest, opts ...grpc.CallOption) (*ToggleCandidateResponse, error)
	ToggleAll(ctx context.Context, in *ToggleAllRequest, opts ...grpc.CallOption) (*ToggleAllResponse, error)
	SelectAll(ctx context.Context, in *SelectAllRequest, opts ...grpc.CallOption) (*SelectAllResponse, error)
	SelectNone(ctx context.Context, in *SelectNoneRequest, opts ...grpc.CallOption) (*SelectNoneResponse, error)
	CommitSelected(ctx context.Context, in *CommitSelectedRequest, opts ...grpc.CallOption) (*CommitSelectedResponse, error)
	DiscardOutcome(ctx context.Context, in *DiscardOutcomeRequest, opts ...grpc.CallOption) (*DiscardOutcomeResponse, error)
}

type ingestionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIngestionServiceClient(cc grpc.ClientConnInterface) IngestionServiceClient {
	return &ingestionServiceClient{cc}
}

func (c *ingestionServiceClient) ExtractDocument(ctx context.Context, in *ExtractDocumentRequest, opts ...grpc.CallOption) (*ExtractDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractDocumentResponse)
	err := c.cc.Invoke(ctx, IngestionService_ExtractDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) GetOutcome(ctx context.Context, in *GetOutcomeRequest, opts ...grpc.CallOption) (*GetOutcomeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetOutcomeResponse)
	err := c.cc.Invoke(ctx, IngestionService_GetOutcome_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) ToggleCandidate(ctx context.Context, in *ToggleCandidateRequest, opts ...grpc.CallOption) (*ToggleCandidateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ToggleCandidateResponse)
	err := c.cc.Invoke(ctx, IngestionService_ToggleCandidate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) ToggleAll(ctx context.Context, in *ToggleAllRequest, opts ...grpc.CallOption) (*ToggleAllResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ToggleAllResponse)
	err := c.cc.Invoke(ctx, IngestionService_ToggleAll_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) SelectAll(ctx context.Context, in *SelectAllRequest, opts ...grpc.CallOption) (*SelectAllResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SelectAllResponse)
	err := c.cc.Invoke(ctx, IngestionService_SelectAll_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) SelectNone(ctx context.Context, in *SelectNoneRequest, opts ...grpc.CallOption) (*SelectNoneResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SelectNoneResponse)
	err := c.cc.Invoke(ctx, IngestionService_SelectNone_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) CommitSelected(ctx context.Context, in *CommitSelectedRequest, opts ...grpc.CallOption) (*CommitSelectedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommitSelectedResponse)
	err := c.cc.Invoke(ctx, IngestionService_CommitSelected_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) DiscardOutcome(ctx context.Context, in *DiscardOutcomeRequest, opts ...grpc.CallOption) (*DiscardOutcomeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DiscardOutcomeResponse)
	err := c.cc.Invoke(ctx, IngestionService_DiscardOutcome_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IngestionServiceServer is the server API for IngestionService service.
// All implementations must embed UnimplementedIngestionServiceServer
// for forward compatibility.
//
// IngestionService runs the PDF extraction pipeline and the review flow over
// its latest outcome. One extraction is in flight at a time; a new upload
// replaces the previous outcome and its selection.
type IngestionServiceServer interface {
	ExtractDocument(context.Context, *ExtractDocumentRequest) (*ExtractDocumentResponse, error)
	GetOutcome(context.Context, *GetOutcomeRequest) (*GetOutcomeResponse, error)
	ToggleCandidate(context.Context, *ToggleCandidateRequest) (*ToggleCandidateResponse, error)
	ToggleAll(context.Context, *ToggleAllRequest) (*ToggleAllResponse, error)
	SelectAll(context.Context, *SelectAllRequest) (*SelectAllResponse, error)
	SelectNone(context.Context, *SelectNoneRequest) (*SelectNoneResponse, error)
	CommitSelected(context.Context, *CommitSelectedRequest) (*CommitSelectedResponse, error)
	DiscardOutcome(context.Context, *DiscardOutcomeRequest) (*DiscardOutcomeResponse, error)
	mustEmbedUnimplementedIngestionServiceServer()
}

// UnimplementedIngestionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedIngestionServiceServer struct{}

func (UnimplementedIngestionServiceServer) ExtractDocument(context.Context, *ExtractDocumentRequest) (*ExtractDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractDocument not implemented")
}
func (UnimplementedIngestionServiceServer) GetOutcome(context.Context, *GetOutcomeRequest) (*GetOutcomeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetOutcome not implemented")
}
func (UnimplementedIngestionServiceServer) ToggleCandidate(context.Context, *ToggleCandidateRequest) (*ToggleCandidateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ToggleCandidate not implemented")
}
func (UnimplementedIngestionServiceServer) ToggleAll(context.Context, *ToggleAllRequest) (*ToggleAllResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ToggleAll not implemented")
}
func (UnimplementedIngestionServiceServer) SelectAll(context.Context, *SelectAllRequest) (*SelectAllResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SelectAll not implemented")
}
func (UnimplementedIngestionServiceServer) SelectNone(context.Context, *SelectNoneRequest) (*SelectNoneResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SelectNone not implemented")
}
func (UnimplementedIngestionServiceServer) CommitSelected(context.Context, *CommitSelectedRequest) (*CommitSelectedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CommitSelected not implemented")
}
func (UnimplementedIngestionServiceServer) DiscardOutcome(context.Context, *DiscardOutcomeRequest) (*DiscardOutcomeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DiscardOutcome not implemented")
}
func (UnimplementedIngestionServiceServer) mustEmbedUnimplementedIngestionServiceServer() {}
func (UnimplementedIngestionServiceServer) testEmbeddedByValue()                          {}

// UnsafeIngestionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to IngestionServiceServer will
// result in compilation errors.
type UnsafeIngestionServiceServer interface {
	mustEmbedUnimplementedIngestionServiceServer()
}

func RegisterIngestionServiceServer(s grpc.ServiceRegistrar, srv IngestionServiceServer) {
	// If the following call pancis, it indicates UnimplementedIngestionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&IngestionService_ServiceDesc, srv)
}

func _IngestionService_ExtractDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).ExtractDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_ExtractDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).ExtractDocument(ctx, req.(*ExtractDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_GetOutcome_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetOutcomeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).GetOutcome(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_GetOutcome_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).GetOutcome(ctx, req.(*GetOutcomeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_ToggleCandidate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ToggleCandidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).ToggleCandidate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_ToggleCandidate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).ToggleCandidate(ctx, req.(*ToggleCandidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_ToggleAll_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ToggleAllRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).ToggleAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_ToggleAll_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).ToggleAll(ctx, req.(*ToggleAllRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_SelectAll_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SelectAllRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).SelectAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_SelectAll_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).SelectAll(ctx, req.(*SelectAllRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_SelectNone_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SelectNoneRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).SelectNone(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_SelectNone_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).SelectNone(ctx, req.(*SelectNoneRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_CommitSelected_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommitSelectedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).CommitSelected(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_CommitSelected_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).CommitSelected(ctx, req.(*CommitSelectedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_DiscardOutcome_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DiscardOutcomeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).DiscardOutcome(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_DiscardOutcome_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).DiscardOutcome(ctx, req.(*DiscardOutcomeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// IngestionService_ServiceDesc is the grpc.ServiceDesc for IngestionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var IngestionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "curricula.v1.IngestionService",
	HandlerType: (*IngestionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractDocument",
			Handler:    _IngestionService_ExtractDocument_Handler,
		},
		{
			MethodName: "GetOutcome",
			Handler:    _IngestionService_GetOutcome_Handler,
		},
		{
			MethodName: "ToggleCandidate",
			Handler:    _IngestionService_ToggleCandidate_Handler,
		},
		{
			MethodName: "ToggleAll",
			Handler:    _IngestionService_ToggleAll_Handler,
		},
		{
			MethodName: "SelectAll",
			Handler:    _IngestionService_SelectAll_Handler,
		},
		{
			MethodName: "SelectNone",
			Handler:    _IngestionService_SelectNone_Handler,
		},
		{
			MethodName: "CommitSelected",
			Handler:    _IngestionService_CommitSelected_Handler,
		},
		{
			MethodName: "DiscardOutcome",
			Handler:    _IngestionService_DiscardOutcome_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "curricula/v1/ingestion.proto",
}
