// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: curricula/v1/admin.proto

package curriculav1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Institution struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	TypeId        string                 `protobuf:"bytes,3,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`       // empty when untyped
	TypeName      string                 `protobuf:"bytes,4,opt,name=type_name,json=typeName,proto3" json:"type_name,omitempty"` // resolved from the active type, if any
	City          string                 `protobuf:"bytes,5,opt,name=city,proto3" json:"city,omitempty"`
	Country       string                 `protobuf:"bytes,6,opt,name=country,proto3" json:"country,omitempty"`
	PostalCode    string                 `protobuf:"bytes,7,opt,name=postal_code,json=postalCode,proto3" json:"postal_code,omitempty"`
	Deleted       bool                   `protobuf:"varint,8,opt,name=deleted,proto3" json:"deleted,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Institution) Reset() {
	*x = Institution{}
	mi := &file_curricula_v1_admin_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Institution) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Institution) ProtoMessage() {}

func (x *Institution) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Institution.ProtoReflect.Descriptor instead.
func (*Institution) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{0}
}

func (x *Institution) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Institution) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Institution) GetTypeId() string {
	if x != nil {
		return x.TypeId
	}
	return ""
}

func (x *Institution) GetTypeName() string {
	if x != nil {
		return x.TypeName
	}
	return ""
}

func (x *Institution) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *Institution) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *Institution) GetPostalCode() string {
	if x != nil {
		return x.PostalCode
	}
	return ""
}

func (x *Institution) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

func (x *Institution) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Institution) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListInstitutionsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	IncludeDeleted bool                   `protobuf:"varint,1,opt,name=include_deleted,json=includeDeleted,proto3" json:"include_deleted,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListInstitutionsRequest) Reset() {
	*x = ListInstitutionsRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInstitutionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInstitutionsRequest) ProtoMessage() {}

func (x *ListInstitutionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInstitutionsRequest.ProtoReflect.Descriptor instead.
func (*ListInstitutionsRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{1}
}

func (x *ListInstitutionsRequest) GetIncludeDeleted() bool {
	if x != nil {
		return x.IncludeDeleted
	}
	return false
}

type ListInstitutionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Institutions  []*Institution         `protobuf:"bytes,1,rep,name=institutions,proto3" json:"institutions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInstitutionsResponse) Reset() {
	*x = ListInstitutionsResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInstitutionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInstitutionsResponse) ProtoMessage() {}

func (x *ListInstitutionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInstitutionsResponse.ProtoReflect.Descriptor instead.
func (*ListInstitutionsResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{2}
}

func (x *ListInstitutionsResponse) GetInstitutions() []*Institution {
	if x != nil {
		return x.Institutions
	}
	return nil
}

type CreateInstitutionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	TypeId        string                 `protobuf:"bytes,2,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`
	City          string                 `protobuf:"bytes,3,opt,name=city,proto3" json:"city,omitempty"`
	Country       string                 `protobuf:"bytes,4,opt,name=country,proto3" json:"country,omitempty"`
	PostalCode    string                 `protobuf:"bytes,5,opt,name=postal_code,json=postalCode,proto3" json:"postal_code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateInstitutionRequest) Reset() {
	*x = CreateInstitutionRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateInstitutionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateInstitutionRequest) ProtoMessage() {}

func (x *CreateInstitutionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateInstitutionRequest.ProtoReflect.Descriptor instead.
func (*CreateInstitutionRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{3}
}

func (x *CreateInstitutionRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateInstitutionRequest) GetTypeId() string {
	if x != nil {
		return x.TypeId
	}
	return ""
}

func (x *CreateInstitutionRequest) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *CreateInstitutionRequest) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *CreateInstitutionRequest) GetPostalCode() string {
	if x != nil {
		return x.PostalCode
	}
	return ""
}

type CreateInstitutionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Institution   *Institution           `protobuf:"bytes,1,opt,name=institution,proto3" json:"institution,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateInstitutionResponse) Reset() {
	*x = CreateInstitutionResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateInstitutionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateInstitutionResponse) ProtoMessage() {}

func (x *CreateInstitutionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateInstitutionResponse.ProtoReflect.Descriptor instead.
func (*CreateInstitutionResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{4}
}

func (x *CreateInstitutionResponse) GetInstitution() *Institution {
	if x != nil {
		return x.Institution
	}
	return nil
}

type UpdateInstitutionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	TypeId        string                 `protobuf:"bytes,3,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`
	City          string                 `protobuf:"bytes,4,opt,name=city,proto3" json:"city,omitempty"`
	Country       string                 `protobuf:"bytes,5,opt,name=country,proto3" json:"country,omitempty"`
	PostalCode    string                 `protobuf:"bytes,6,opt,name=postal_code,json=postalCode,proto3" json:"postal_code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateInstitutionRequest) Reset() {
	*x = UpdateInstitutionRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateInstitutionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateInstitutionRequest) ProtoMessage() {}

func (x *UpdateInstitutionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateInstitutionRequest.ProtoReflect.Descriptor instead.
func (*UpdateInstitutionRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{5}
}

func (x *UpdateInstitutionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateInstitutionRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateInstitutionRequest) GetTypeId() string {
	if x != nil {
		return x.TypeId
	}
	return ""
}

func (x *UpdateInstitutionRequest) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *UpdateInstitutionRequest) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *UpdateInstitutionRequest) GetPostalCode() string {
	if x != nil {
		return x.PostalCode
	}
	return ""
}

type UpdateInstitutionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Institution   *Institution           `protobuf:"bytes,1,opt,name=institution,proto3" json:"institution,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateInstitutionResponse) Reset() {
	*x = UpdateInstitutionResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateInstitutionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateInstitutionResponse) ProtoMessage() {}

func (x *UpdateInstitutionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateInstitutionResponse.ProtoReflect.Descriptor instead.
func (*UpdateInstitutionResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{6}
}

func (x *UpdateInstitutionResponse) GetInstitution() *Institution {
	if x != nil {
		return x.Institution
	}
	return nil
}

type DeleteInstitutionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteInstitutionRequest) Reset() {
	*x = DeleteInstitutionRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteInstitutionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteInstitutionRequest) ProtoMessage() {}

func (x *DeleteInstitutionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteInstitutionRequest.ProtoReflect.Descriptor instead.
func (*DeleteInstitutionRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{7}
}

func (x *DeleteInstitutionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteInstitutionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteInstitutionResponse) Reset() {
	*x = DeleteInstitutionResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteInstitutionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteInstitutionResponse) ProtoMessage() {}

func (x *DeleteInstitutionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteInstitutionResponse.ProtoReflect.Descriptor instead.
func (*DeleteInstitutionResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{8}
}

type RestoreInstitutionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RestoreInstitutionRequest) Reset() {
	*x = RestoreInstitutionRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RestoreInstitutionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RestoreInstitutionRequest) ProtoMessage() {}

func (x *RestoreInstitutionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RestoreInstitutionRequest.ProtoReflect.Descriptor instead.
func (*RestoreInstitutionRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{9}
}

func (x *RestoreInstitutionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RestoreInstitutionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RestoreInstitutionResponse) Reset() {
	*x = RestoreInstitutionResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RestoreInstitutionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RestoreInstitutionResponse) ProtoMessage() {}

func (x *RestoreInstitutionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RestoreInstitutionResponse.ProtoReflect.Descriptor instead.
func (*RestoreInstitutionResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{10}
}

type InstitutionType struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Deleted       bool                   `protobuf:"varint,3,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InstitutionType) Reset() {
	*x = InstitutionType{}
	mi := &file_curricula_v1_admin_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InstitutionType) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InstitutionType) ProtoMessage() {}

func (x *InstitutionType) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InstitutionType.ProtoReflect.Descriptor instead.
func (*InstitutionType) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{11}
}

func (x *InstitutionType) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *InstitutionType) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *InstitutionType) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type ListInstitutionTypesRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	IncludeDeleted bool                   `protobuf:"varint,1,opt,name=include_deleted,json=includeDeleted,proto3" json:"include_deleted,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListInstitutionTypesRequest) Reset() {
	*x = ListInstitutionTypesRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInstitutionTypesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInstitutionTypesRequest) ProtoMessage() {}

func (x *ListInstitutionTypesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInstitutionTypesRequest.ProtoReflect.Descriptor instead.
func (*ListInstitutionTypesRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{12}
}

func (x *ListInstitutionTypesRequest) GetIncludeDeleted() bool {
	if x != nil {
		return x.IncludeDeleted
	}
	return false
}

type ListInstitutionTypesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Types         []*InstitutionType     `protobuf:"bytes,1,rep,name=types,proto3" json:"types,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInstitutionTypesResponse) Reset() {
	*x = ListInstitutionTypesResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInstitutionTypesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInstitutionTypesResponse) ProtoMessage() {}

func (x *ListInstitutionTypesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInstitutionTypesResponse.ProtoReflect.Descriptor instead.
func (*ListInstitutionTypesResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{13}
}

func (x *ListInstitutionTypesResponse) GetTypes() []*InstitutionType {
	if x != nil {
		return x.Types
	}
	return nil
}

type CreateInstitutionTypeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateInstitutionTypeRequest) Reset() {
	*x = CreateInstitutionTypeRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateInstitutionTypeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateInstitutionTypeRequest) ProtoMessage() {}

func (x *CreateInstitutionTypeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateInstitutionTypeRequest.ProtoReflect.Descriptor instead.
func (*CreateInstitutionTypeRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{14}
}

func (x *CreateInstitutionTypeRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateInstitutionTypeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          *InstitutionType       `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateInstitutionTypeResponse) Reset() {
	*x = CreateInstitutionTypeResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateInstitutionTypeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateInstitutionTypeResponse) ProtoMessage() {}

func (x *CreateInstitutionTypeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateInstitutionTypeResponse.ProtoReflect.Descriptor instead.
func (*CreateInstitutionTypeResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{15}
}

func (x *CreateInstitutionTypeResponse) GetType() *InstitutionType {
	if x != nil {
		return x.Type
	}
	return nil
}

type UpdateInstitutionTypeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateInstitutionTypeRequest) Reset() {
	*x = UpdateInstitutionTypeRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateInstitutionTypeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateInstitutionTypeRequest) ProtoMessage() {}

func (x *UpdateInstitutionTypeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateInstitutionTypeRequest.ProtoReflect.Descriptor instead.
func (*UpdateInstitutionTypeRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{16}
}

func (x *UpdateInstitutionTypeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateInstitutionTypeRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type UpdateInstitutionTypeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          *InstitutionType       `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateInstitutionTypeResponse) Reset() {
	*x = UpdateInstitutionTypeResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateInstitutionTypeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateInstitutionTypeResponse) ProtoMessage() {}

func (x *UpdateInstitutionTypeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateInstitutionTypeResponse.ProtoReflect.Descriptor instead.
func (*UpdateInstitutionTypeResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{17}
}

func (x *UpdateInstitutionTypeResponse) GetType() *InstitutionType {
	if x != nil {
		return x.Type
	}
	return nil
}

type DeleteInstitutionTypeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteInstitutionTypeRequest) Reset() {
	*x = DeleteInstitutionTypeRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteInstitutionTypeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteInstitutionTypeRequest) ProtoMessage() {}

func (x *DeleteInstitutionTypeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteInstitutionTypeRequest.ProtoReflect.Descriptor instead.
func (*DeleteInstitutionTypeRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{18}
}

func (x *DeleteInstitutionTypeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteInstitutionTypeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteInstitutionTypeResponse) Reset() {
	*x = DeleteInstitutionTypeResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteInstitutionTypeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteInstitutionTypeResponse) ProtoMessage() {}

func (x *DeleteInstitutionTypeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteInstitutionTypeResponse.ProtoReflect.Descriptor instead.
func (*DeleteInstitutionTypeResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{19}
}

type RestoreInstitutionTypeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RestoreInstitutionTypeRequest) Reset() {
	*x = RestoreInstitutionTypeRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RestoreInstitutionTypeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RestoreInstitutionTypeRequest) ProtoMessage() {}

func (x *RestoreInstitutionTypeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RestoreInstitutionTypeRequest.ProtoReflect.Descriptor instead.
func (*RestoreInstitutionTypeRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{20}
}

func (x *RestoreInstitutionTypeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RestoreInstitutionTypeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RestoreInstitutionTypeResponse) Reset() {
	*x = RestoreInstitutionTypeResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RestoreInstitutionTypeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RestoreInstitutionTypeResponse) ProtoMessage() {}

func (x *RestoreInstitutionTypeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RestoreInstitutionTypeResponse.ProtoReflect.Descriptor instead.
func (*RestoreInstitutionTypeResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{21}
}

type UserRule struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RuleName      string                 `protobuf:"bytes,2,opt,name=rule_name,json=ruleName,proto3" json:"rule_name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Enabled       bool                   `protobuf:"varint,4,opt,name=enabled,proto3" json:"enabled,omitempty"`
	Deleted       bool                   `protobuf:"varint,5,opt,name=deleted,proto3" json:"deleted,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UserRule) Reset() {
	*x = UserRule{}
	mi := &file_curricula_v1_admin_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UserRule) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UserRule) ProtoMessage() {}

func (x *UserRule) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UserRule.ProtoReflect.Descriptor instead.
func (*UserRule) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{22}
}

func (x *UserRule) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UserRule) GetRuleName() string {
	if x != nil {
		return x.RuleName
	}
	return ""
}

func (x *UserRule) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *UserRule) GetEnabled() bool {
	if x != nil {
		return x.Enabled
	}
	return false
}

func (x *UserRule) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

func (x *UserRule) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *UserRule) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListUserRulesRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	IncludeDeleted bool                   `protobuf:"varint,1,opt,name=include_deleted,json=includeDeleted,proto3" json:"include_deleted,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListUserRulesRequest) Reset() {
	*x = ListUserRulesRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUserRulesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUserRulesRequest) ProtoMessage() {}

func (x *ListUserRulesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUserRulesRequest.ProtoReflect.Descriptor instead.
func (*ListUserRulesRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{23}
}

func (x *ListUserRulesRequest) GetIncludeDeleted() bool {
	if x != nil {
		return x.IncludeDeleted
	}
	return false
}

type ListUserRulesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rules         []*UserRule            `protobuf:"bytes,1,rep,name=rules,proto3" json:"rules,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUserRulesResponse) Reset() {
	*x = ListUserRulesResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUserRulesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUserRulesResponse) ProtoMessage() {}

func (x *ListUserRulesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUserRulesResponse.ProtoReflect.Descriptor instead.
func (*ListUserRulesResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{24}
}

func (x *ListUserRulesResponse) GetRules() []*UserRule {
	if x != nil {
		return x.Rules
	}
	return nil
}

type CreateUserRuleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RuleName      string                 `protobuf:"bytes,1,opt,name=rule_name,json=ruleName,proto3" json:"rule_name,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Enabled       bool                   `protobuf:"varint,3,opt,name=enabled,proto3" json:"enabled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserRuleRequest) Reset() {
	*x = CreateUserRuleRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserRuleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserRuleRequest) ProtoMessage() {}

func (x *CreateUserRuleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserRuleRequest.ProtoReflect.Descriptor instead.
func (*CreateUserRuleRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{25}
}

func (x *CreateUserRuleRequest) GetRuleName() string {
	if x != nil {
		return x.RuleName
	}
	return ""
}

func (x *CreateUserRuleRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateUserRuleRequest) GetEnabled() bool {
	if x != nil {
		return x.Enabled
	}
	return false
}

type CreateUserRuleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rule          *UserRule              `protobuf:"bytes,1,opt,name=rule,proto3" json:"rule,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserRuleResponse) Reset() {
	*x = CreateUserRuleResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserRuleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserRuleResponse) ProtoMessage() {}

func (x *CreateUserRuleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserRuleResponse.ProtoReflect.Descriptor instead.
func (*CreateUserRuleResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{26}
}

func (x *CreateUserRuleResponse) GetRule() *UserRule {
	if x != nil {
		return x.Rule
	}
	return nil
}

type UpdateUserRuleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RuleName      string                 `protobuf:"bytes,2,opt,name=rule_name,json=ruleName,proto3" json:"rule_name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Enabled       bool                   `protobuf:"varint,4,opt,name=enabled,proto3" json:"enabled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateUserRuleRequest) Reset() {
	*x = UpdateUserRuleRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateUserRuleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateUserRuleRequest) ProtoMessage() {}

func (x *UpdateUserRuleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateUserRuleRequest.ProtoReflect.Descriptor instead.
func (*UpdateUserRuleRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{27}
}

func (x *UpdateUserRuleRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateUserRuleRequest) GetRuleName() string {
	if x != nil {
		return x.RuleName
	}
	return ""
}

func (x *UpdateUserRuleRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *UpdateUserRuleRequest) GetEnabled() bool {
	if x != nil {
		return x.Enabled
	}
	return false
}

type UpdateUserRuleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rule          *UserRule              `protobuf:"bytes,1,opt,name=rule,proto3" json:"rule,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateUserRuleResponse) Reset() {
	*x = UpdateUserRuleResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateUserRuleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateUserRuleResponse) ProtoMessage() {}

func (x *UpdateUserRuleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateUserRuleResponse.ProtoReflect.Descriptor instead.
func (*UpdateUserRuleResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{28}
}

func (x *UpdateUserRuleResponse) GetRule() *UserRule {
	if x != nil {
		return x.Rule
	}
	return nil
}

type DeleteUserRuleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteUserRuleRequest) Reset() {
	*x = DeleteUserRuleRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteUserRuleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteUserRuleRequest) ProtoMessage() {}

func (x *DeleteUserRuleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteUserRuleRequest.ProtoReflect.Descriptor instead.
func (*DeleteUserRuleRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{29}
}

func (x *DeleteUserRuleRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteUserRuleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteUserRuleResponse) Reset() {
	*x = DeleteUserRuleResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteUserRuleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteUserRuleResponse) ProtoMessage() {}

func (x *DeleteUserRuleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteUserRuleResponse.ProtoReflect.Descriptor instead.
func (*DeleteUserRuleResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{30}
}

type RestoreUserRuleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RestoreUserRuleRequest) Reset() {
	*x = RestoreUserRuleRequest{}
	mi := &file_curricula_v1_admin_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RestoreUserRuleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RestoreUserRuleRequest) ProtoMessage() {}

func (x *RestoreUserRuleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RestoreUserRuleRequest.ProtoReflect.Descriptor instead.
func (*RestoreUserRuleRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{31}
}

func (x *RestoreUserRuleRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RestoreUserRuleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RestoreUserRuleResponse) Reset() {
	*x = RestoreUserRuleResponse{}
	mi := &file_curricula_v1_admin_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RestoreUserRuleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RestoreUserRuleResponse) ProtoMessage() {}

func (x *RestoreUserRuleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_admin_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RestoreUserRuleResponse.ProtoReflect.Descriptor instead.
func (*RestoreUserRuleResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_admin_proto_rawDescGZIP(), []int{32}
}

var File_curricula_v1_admin_proto protoreflect.FileDescriptor

const file_curricula_v1_admin_proto_rawDesc = "" +
	"\n" +
	"\x18curricula/v1/admin.proto\x12\fcurricula.v1\"\x8e\x02\n" +
	"\vInstitution\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x17\n" +
	"\atype_id\x18\x03 \x01(\tR\x06typeId\x12\x1b\n" +
	"\ttype_name\x18\x04 \x01(\tR\btypeName\x12\x12\n" +
	"\x04city\x18\x05 \x01(\tR\x04city\x12\x18\n" +
	"\acountry\x18\x06 \x01(\tR\acountry\x12\x1f\n" +
	"\vpostal_code\x18\a \x01(\tR\n" +
	"postalCode\x12\x18\n" +
	"\adeleted\x18\b \x01(\bR\adeleted\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"B\n" +
	"\x17ListInstitutionsRequest\x12'\n" +
	"\x0finclude_deleted\x18\x01 \x01(\bR\x0eincludeDeleted\"Y\n" +
	"\x18ListInstitutionsResponse\x12=\n" +
	"\finstitutions\x18\x01 \x03(\v2\x19.curricula.v1.InstitutionR\finstitutions\"\x96\x01\n" +
	"\x18CreateInstitutionRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x17\n" +
	"\atype_id\x18\x02 \x01(\tR\x06typeId\x12\x12\n" +
	"\x04city\x18\x03 \x01(\tR\x04city\x12\x18\n" +
	"\acountry\x18\x04 \x01(\tR\acountry\x12\x1f\n" +
	"\vpostal_code\x18\x05 \x01(\tR\n" +
	"postalCode\"X\n" +
	"\x19CreateInstitutionResponse\x12;\n" +
	"\vinstitution\x18\x01 \x01(\v2\x19.curricula.v1.InstitutionR\vinstitution\"\xa6\x01\n" +
	"\x18UpdateInstitutionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x17\n" +
	"\atype_id\x18\x03 \x01(\tR\x06typeId\x12\x12\n" +
	"\x04city\x18\x04 \x01(\tR\x04city\x12\x18\n" +
	"\acountry\x18\x05 \x01(\tR\acountry\x12\x1f\n" +
	"\vpostal_code\x18\x06 \x01(\tR\n" +
	"postalCode\"X\n" +
	"\x19UpdateInstitutionResponse\x12;\n" +
	"\vinstitution\x18\x01 \x01(\v2\x19.curricula.v1.InstitutionR\vinstitution\"*\n" +
	"\x18DeleteInstitutionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x1b\n" +
	"\x19DeleteInstitutionResponse\"+\n" +
	"\x19RestoreInstitutionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x1c\n" +
	"\x1aRestoreInstitutionResponse\"O\n" +
	"\x0fInstitutionType\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\adeleted\x18\x03 \x01(\bR\adeleted\"F\n" +
	"\x1bListInstitutionTypesRequest\x12'\n" +
	"\x0finclude_deleted\x18\x01 \x01(\bR\x0eincludeDeleted\"S\n" +
	"\x1cListInstitutionTypesResponse\x123\n" +
	"\x05types\x18\x01 \x03(\v2\x1d.curricula.v1.InstitutionTypeR\x05types\"2\n" +
	"\x1cCreateInstitutionTypeRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"R\n" +
	"\x1dCreateInstitutionTypeResponse\x121\n" +
	"\x04type\x18\x01 \x01(\v2\x1d.curricula.v1.InstitutionTypeR\x04type\"B\n" +
	"\x1cUpdateInstitutionTypeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"R\n" +
	"\x1dUpdateInstitutionTypeResponse\x121\n" +
	"\x04type\x18\x01 \x01(\v2\x1d.curricula.v1.InstitutionTypeR\x04type\".\n" +
	"\x1cDeleteInstitutionTypeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x1f\n" +
	"\x1dDeleteInstitutionTypeResponse\"/\n" +
	"\x1dRestoreInstitutionTypeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\" \n" +
	"\x1eRestoreInstitutionTypeResponse\"\xcb\x01\n" +
	"\bUserRule\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\trule_name\x18\x02 \x01(\tR\bruleName\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x18\n" +
	"\aenabled\x18\x04 \x01(\bR\aenabled\x12\x18\n" +
	"\adeleted\x18\x05 \x01(\bR\adeleted\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\"?\n" +
	"\x14ListUserRulesRequest\x12'\n" +
	"\x0finclude_deleted\x18\x01 \x01(\bR\x0eincludeDeleted\"E\n" +
	"\x15ListUserRulesResponse\x12,\n" +
	"\x05rules\x18\x01 \x03(\v2\x16.curricula.v1.UserRuleR\x05rules\"p\n" +
	"\x15CreateUserRuleRequest\x12\x1b\n" +
	"\trule_name\x18\x01 \x01(\tR\bruleName\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x18\n" +
	"\aenabled\x18\x03 \x01(\bR\aenabled\"D\n" +
	"\x16CreateUserRuleResponse\x12*\n" +
	"\x04rule\x18\x01 \x01(\v2\x16.curricula.v1.UserRuleR\x04rule\"\x80\x01\n" +
	"\x15UpdateUserRuleRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\trule_name\x18\x02 \x01(\tR\bruleName\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x18\n" +
	"\aenabled\x18\x04 \x01(\bR\aenabled\"D\n" +
	"\x16UpdateUserRuleResponse\x12*\n" +
	"\x04rule\x18\x01 \x01(\v2\x16.curricula.v1.UserRuleR\x04rule\"'\n" +
	"\x15DeleteUserRuleRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x18\n" +
	"\x16DeleteUserRuleResponse\"(\n" +
	"\x16RestoreUserRuleRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x19\n" +
	"\x17RestoreUserRuleResponse2\x97\f\n" +
	"\fAdminService\x12a\n" +
	"\x10ListInstitutions\x12%.curricula.v1.ListInstitutionsRequest\x1a&.curricula.v1.ListInstitutionsResponse\x12d\n" +
	"\x11CreateInstitution\x12&.curricula.v1.CreateInstitutionRequest\x1a'.curricula.v1.CreateInstitutionResponse\x12d\n" +
	"\x11UpdateInstitution\x12&.curricula.v1.UpdateInstitutionRequest\x1a'.curricula.v1.UpdateInstitutionResponse\x12d\n" +
	"\x11DeleteInstitution\x12&.curricula.v1.DeleteInstitutionRequest\x1a'.curricula.v1.DeleteInstitutionResponse\x12g\n" +
	"\x12RestoreInstitution\x12'.curricula.v1.RestoreInstitutionRequest\x1a(.curricula.v1.RestoreInstitutionResponse\x12m\n" +
	"\x14ListInstitutionTypes\x12).curricula.v1.ListInstitutionTypesRequest\x1a*.curricula.v1.ListInstitutionTypesResponse\x12p\n" +
	"\x15CreateInstitutionType\x12*.curricula.v1.CreateInstitutionTypeRequest\x1a+.curricula.v1.CreateInstitutionTypeResponse\x12p\n" +
	"\x15UpdateInstitutionType\x12*.curricula.v1.UpdateInstitutionTypeRequest\x1a+.curricula.v1.UpdateInstitutionTypeResponse\x12p\n" +
	"\x15DeleteInstitutionType\x12*.curricula.v1.DeleteInstitutionTypeRequest\x1a+.curricula.v1.DeleteInstitutionTypeResponse\x12s\n" +
	"\x16RestoreInstitutionType\x12+.curricula.v1.RestoreInstitutionTypeRequest\x1a,.curricula.v1.RestoreInstitutionTypeResponse\x12X\n" +
	"\rListUserRules\x12\".curricula.v1.ListUserRulesRequest\x1a#.curricula.v1.ListUserRulesResponse\x12[\n" +
	"\x0eCreateUserRule\x12#.curricula.v1.CreateUserRuleRequest\x1a$.curricula.v1.CreateUserRuleResponse\x12[\n" +
	"\x0eUpdateUserRule\x12#.curricula.v1.UpdateUserRuleRequest\x1a$.curricula.v1.UpdateUserRuleResponse\x12[\n" +
	"\x0eDeleteUserRule\x12#.curricula.v1.DeleteUserRuleRequest\x1a$.curricula.v1.DeleteUserRuleResponse\x12^\n" +
	"\x0fRestoreUserRule\x12$.curricula.v1.RestoreUserRuleRequest\x1a%.curricula.v1.RestoreUserRuleResponseBLZJgithub.com/brunoqueiroz/curricula-admin/gen/proto/curricula/v1;curriculav1b\x06proto3"

var (
	file_curricula_v1_admin_proto_rawDescOnce sync.Once
	file_curricula_v1_admin_proto_rawDescData []byte
)

func file_curricula_v1_admin_proto_rawDescGZIP() []byte {
	file_curricula_v1_admin_proto_rawDescOnce.Do(func() {
		file_curricula_v1_admin_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_curricula_v1_admin_proto_rawDesc), len(file_curricula_v1_admin_proto_rawDesc)))
	})
	return file_curricula_v1_admin_proto_rawDescData
}

var file_curricula_v1_admin_proto_msgTypes = make([]protoimpl.MessageInfo, 33)
var file_curricula_v1_admin_proto_goTypes = []any{
	(*Institution)(nil),                    // 0: curricula.v1.Institution
	(*ListInstitutionsRequest)(nil),        // 1: curricula.v1.ListInstitutionsRequest
	(*ListInstitutionsResponse)(nil),       // 2: curricula.v1.ListInstitutionsResponse
	(*CreateInstitutionRequest)(nil),       // 3: curricula.v1.CreateInstitutionRequest
	(*CreateInstitutionResponse)(nil),      // 4: curricula.v1.CreateInstitutionResponse
	(*UpdateInstitutionRequest)(nil),       // 5: curricula.v1.UpdateInstitutionRequest
	(*UpdateInstitutionResponse)(nil),      // 6: curricula.v1.UpdateInstitutionResponse
	(*DeleteInstitutionRequest)(nil),       // 7: curricula.v1.DeleteInstitutionRequest
	(*DeleteInstitutionResponse)(nil),      // 8: curricula.v1.DeleteInstitutionResponse
	(*RestoreInstitutionRequest)(nil),      // 9: curricula.v1.RestoreInstitutionRequest
	(*RestoreInstitutionResponse)(nil),     // 10: curricula.v1.RestoreInstitutionResponse
	(*InstitutionType)(nil),                // 11: curricula.v1.InstitutionType
	(*ListInstitutionTypesRequest)(nil),    // 12: curricula.v1.ListInstitutionTypesRequest
	(*ListInstitutionTypesResponse)(nil),   // 13: curricula.v1.ListInstitutionTypesResponse
	(*CreateInstitutionTypeRequest)(nil),   // 14: curricula.v1.CreateInstitutionTypeRequest
	(*CreateInstitutionTypeResponse)(nil),  // 15: curricula.v1.CreateInstitutionTypeResponse
	(*UpdateInstitutionTypeRequest)(nil),   // 16: curricula.v1.UpdateInstitutionTypeRequest
	(*UpdateInstitutionTypeResponse)(nil),  // 17: curricula.v1.UpdateInstitutionTypeResponse
	(*DeleteInstitutionTypeRequest)(nil),   // 18: curricula.v1.DeleteInstitutionTypeRequest
	(*DeleteInstitutionTypeResponse)(nil),  // 19: curricula.v1.DeleteInstitutionTypeResponse
	(*RestoreInstitutionTypeRequest)(nil),  // 20: curricula.v1.RestoreInstitutionTypeRequest
	(*RestoreInstitutionTypeResponse)(nil), // 21: curricula.v1.RestoreInstitutionTypeResponse
	(*UserRule)(nil),                       // 22: curricula.v1.UserRule
	(*ListUserRulesRequest)(nil),           // 23: curricula.v1.ListUserRulesRequest
	(*ListUserRulesResponse)(nil),          // 24: curricula.v1.ListUserRulesResponse
	(*CreateUserRuleRequest)(nil),          // 25: curricula.v1.CreateUserRuleRequest
	(*CreateUserRuleResponse)(nil),         // 26: curricula.v1.CreateUserRuleResponse
	(*UpdateUserRuleRequest)(nil),          // 27: curricula.v1.UpdateUserRuleRequest
	(*UpdateUserRuleResponse)(nil),         // 28: curricula.v1.UpdateUserRuleResponse
	(*DeleteUserRuleRequest)(nil),          // 29: curricula.v1.DeleteUserRuleRequest
	(*DeleteUserRuleResponse)(nil),         // 30: curricula.v1.DeleteUserRuleResponse
	(*RestoreUserRuleRequest)(nil),         // 31: curricula.v1.RestoreUserRuleRequest
	(*RestoreUserRuleResponse)(nil),        // 32: curricula.v1.RestoreUserRuleResponse
}
var file_curricula_v1_admin_proto_depIdxs = []int32{
	0,  // 0: curricula.v1.ListInstitutionsResponse.institutions:type_name -> curricula.v1.Institution
	0,  // 1: curricula.v1.CreateInstitutionResponse.institution:type_name -> curricula.v1.Institution
	0,  // 2: curricula.v1.UpdateInstitutionResponse.institution:type_name -> curricula.v1.Institution
	11, // 3: curricula.v1.ListInstitutionTypesResponse.types:type_name -> curricula.v1.InstitutionType
	11, // 4: curricula.v1.CreateInstitutionTypeResponse.type:type_name -> curricula.v1.InstitutionType
	11, // 5: curricula.v1.UpdateInstitutionTypeResponse.type:type_name -> curricula.v1.InstitutionType
	22, // 6: curricula.v1.ListUserRulesResponse.rules:type_name -> curricula.v1.UserRule
	22, // 7: curricula.v1.CreateUserRuleResponse.rule:type_name -> curricula.v1.UserRule
	22, // 8: curricula.v1.UpdateUserRuleResponse.rule:type_name -> curricula.v1.UserRule
	1,  // 9: curricula.v1.AdminService.ListInstitutions:input_type -> curricula.v1.ListInstitutionsRequest
	3,  // 10: curricula.v1.AdminService.CreateInstitution:input_type -> curricula.v1.CreateInstitutionRequest
	5,  // 11: curricula.v1.AdminService.UpdateInstitution:input_type -> curricula.v1.UpdateInstitutionRequest
	7,  // 12: curricula.v1.AdminService.DeleteInstitution:input_type -> curricula.v1.DeleteInstitutionRequest
	9,  // 13: curricula.v1.AdminService.RestoreInstitution:input_type -> curricula.v1.RestoreInstitutionRequest
	12, // 14: curricula.v1.AdminService.ListInstitutionTypes:input_type -> curricula.v1.ListInstitutionTypesRequest
	14, // 15: curricula.v1.AdminService.CreateInstitutionType:input_type -> curricula.v1.CreateInstitutionTypeRequest
	16, // 16: curricula.v1.AdminService.UpdateInstitutionType:input_type -> curricula.v1.UpdateInstitutionTypeRequest
	18, // 17: curricula.v1.AdminService.DeleteInstitutionType:input_type -> curricula.v1.DeleteInstitutionTypeRequest
	20, // 18: curricula.v1.AdminService.RestoreInstitutionType:input_type -> curricula.v1.RestoreInstitutionTypeRequest
	23, // 19: curricula.v1.AdminService.ListUserRules:input_type -> curricula.v1.ListUserRulesRequest
	25, // 20: curricula.v1.AdminService.CreateUserRule:input_type -> curricula.v1.CreateUserRuleRequest
	27, // 21: curricula.v1.AdminService.UpdateUserRule:input_type -> curricula.v1.UpdateUserRuleRequest
	29, // 22: curricula.v1.AdminService.DeleteUserRule:input_type -> curricula.v1.DeleteUserRuleRequest
	31, // 23: curricula.v1.AdminService.RestoreUserRule:input_type -> curricula.v1.RestoreUserRuleRequest
	2,  // 24: curricula.v1.AdminService.ListInstitutions:output_type -> curricula.v1.ListInstitutionsResponse
	4,  // 25: curricula.v1.AdminService.CreateInstitution:output_type -> curricula.v1.CreateInstitutionResponse
	6,  // 26: curricula.v1.AdminService.UpdateInstitution:output_type -> curricula.v1.UpdateInstitutionResponse
	8,  // 27: curricula.v1.AdminService.DeleteInstitution:output_type -> curricula.v1.DeleteInstitutionResponse
	10, // 28: curricula.v1.AdminService.RestoreInstitution:output_type -> curricula.v1.RestoreInstitutionResponse
	13, // 29: curricula.v1.AdminService.ListInstitutionTypes:output_type -> curricula.v1.ListInstitutionTypesResponse
	15, // 30: curricula.v1.AdminService.CreateInstitutionType:output_type -> curricula.v1.CreateInstitutionTypeResponse
	17, // 31: curricula.v1.AdminService.UpdateInstitutionType:output_type -> curricula.v1.UpdateInstitutionTypeResponse
	19, // 32: curricula.v1.AdminService.DeleteInstitutionType:output_type -> curricula.v1.DeleteInstitutionTypeResponse
	21, // 33: curricula.v1.AdminService.RestoreInstitutionType:output_type -> curricula.v1.RestoreInstitutionTypeResponse
	24, // 34: curricula.v1.AdminService.ListUserRules:output_type -> curricula.v1.ListUserRulesResponse
	26, // 35: curricula.v1.AdminService.CreateUserRule:output_type -> curricula.v1.CreateUserRuleResponse
	28, // 36: curricula.v1.AdminService.UpdateUserRule:output_type -> curricula.v1.UpdateUserRuleResponse
	30, // 37: curricula.v1.AdminService.DeleteUserRule:output_type -> curricula.v1.DeleteUserRuleResponse
	32, // 38: curricula.v1.AdminService.RestoreUserRule:output_type -> curricula.v1.RestoreUserRuleResponse
	24, // [24:39] is the sub-list for method output_type
	9,  // [9:24] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_curricula_v1_admin_proto_init() }
func file_curricula_v1_admin_proto_init() {
	if File_curricula_v1_admin_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_curricula_v1_admin_proto_rawDesc), len(file_curricula_v1_admin_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   33,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_curricula_v1_admin_proto_goTypes,
		DependencyIndexes: file_curricula_v1_admin_proto_depIdxs,
		MessageInfos:      file_curricula_v1_admin_proto_msgTypes,
	}.Build()
	File_curricula_v1_admin_proto = out.File
	file_curricula_v1_admin_proto_goTypes = nil
	file_curricula_v1_admin_proto_depIdxs = nil
}
