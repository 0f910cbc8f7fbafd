// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: curricula/v1/curricula.proto

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

type StandardItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Subject       string                 `protobuf:"bytes,3,opt,name=subject,proto3" json:"subject,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	GradeLevel    string                 `protobuf:"bytes,5,opt,name=grade_level,json=gradeLevel,proto3" json:"grade_level,omitempty"`
	ThematicUnit  string                 `protobuf:"bytes,6,opt,name=thematic_unit,json=thematicUnit,proto3" json:"thematic_unit,omitempty"`
	Deleted       bool                   `protobuf:"varint,7,opt,name=deleted,proto3" json:"deleted,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt     string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StandardItem) Reset() {
	*x = StandardItem{}
	mi := &file_curricula_v1_curricula_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StandardItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StandardItem) ProtoMessage() {}

func (x *StandardItem) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_curricula_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StandardItem.ProtoReflect.Descriptor instead.
func (*StandardItem) Descriptor() ([]byte, []int) {
	return file_curricula_v1_curricula_proto_rawDescGZIP(), []int{0}
}

func (x *StandardItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *StandardItem) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *StandardItem) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *StandardItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *StandardItem) GetGradeLevel() string {
	if x != nil {
		return x.GradeLevel
	}
	return ""
}

func (x *StandardItem) GetThematicUnit() string {
	if x != nil {
		return x.ThematicUnit
	}
	return ""
}

func (x *StandardItem) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

func (x *StandardItem) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *StandardItem) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListStandardsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	IncludeDeleted bool                   `protobuf:"varint,1,opt,name=include_deleted,json=includeDeleted,proto3" json:"include_deleted,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListStandardsRequest) Reset() {
	*x = ListStandardsRequest{}
	mi := &file_curricula_v1_curricula_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStandardsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStandardsRequest) ProtoMessage() {}

func (x *ListStandardsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_curricula_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStandardsRequest.ProtoReflect.Descriptor instead.
func (*ListStandardsRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_curricula_proto_rawDescGZIP(), []int{1}
}

func (x *ListStandardsRequest) GetIncludeDeleted() bool {
	if x != nil {
		return x.IncludeDeleted
	}
	return false
}

type ListStandardsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*StandardItem        `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStandardsResponse) Reset() {
	*x = ListStandardsResponse{}
	mi := &file_curricula_v1_curricula_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStandardsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStandardsResponse) ProtoMessage() {}

func (x *ListStandardsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_curricula_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStandardsResponse.ProtoReflect.Descriptor instead.
func (*ListStandardsResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_curricula_proto_rawDescGZIP(), []int{2}
}

func (x *ListStandardsResponse) GetItems() []*StandardItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type CreateStandardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Subject       string                 `protobuf:"bytes,2,opt,name=subject,proto3" json:"subject,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	GradeLevel    string                 `protobuf:"bytes,4,opt,name=grade_level,json=gradeLevel,proto3" json:"grade_level,omitempty"`
	ThematicUnit  string                 `protobuf:"bytes,5,opt,name=thematic_unit,json=thematicUnit,proto3" json:"thematic_unit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateStandardRequest) Reset() {
	*x = CreateStandardRequest{}
	mi := &file_curricula_v1_curricula_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateStandardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateStandardRequest) ProtoMessage() {}

func (x *CreateStandardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_curricula_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateStandardRequest.ProtoReflect.Descriptor instead.
func (*CreateStandardRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_curricula_proto_rawDescGZIP(), []int{3}
}

func (x *CreateStandardRequest) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *CreateStandardRequest) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *CreateStandardRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateStandardRequest) GetGradeLevel() string {
	if x != nil {
		return x.GradeLevel
	}
	return ""
}

func (x *CreateStandardRequest) GetThematicUnit() string {
	if x != nil {
		return x.ThematicUnit
	}
	return ""
}

type CreateStandardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *StandardItem          `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateStandardResponse) Reset() {
	*x = CreateStandardResponse{}
	mi := &file_curricula_v1_curricula_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateStandardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateStandardResponse) ProtoMessage() {}

func (x *CreateStandardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_curricula_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateStandardResponse.ProtoReflect.Descriptor instead.
func (*CreateStandardResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_curricula_proto_rawDescGZIP(), []int{4}
}

func (x *CreateStandardResponse) GetItem() *StandardItem {
	if x != nil {
		return x.Item
	}
	return nil
}

type UpdateStandardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Subject       string                 `protobuf:"bytes,3,opt,name=subject,proto3" json:"subject,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	GradeLevel    string                 `protobuf:"bytes,5,opt,name=grade_level,json=gradeLevel,proto3" json:"grade_level,omitempty"`
	ThematicUnit  string                 `protobuf:"bytes,6,opt,name=thematic_unit,json=thematicUnit,proto3" json:"thematic_unit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateStandardRequest) Reset() {
	*x = UpdateStandardRequest{}
	mi := &file_curricula_v1_curricula_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateStandardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateStandardRequest) ProtoMessage() {}

func (x *UpdateStandardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_curricula_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateStandardRequest.ProtoReflect.Descriptor instead.
func (*UpdateStandardRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_curricula_proto_rawDescGZIP(), []int{5}
}

func (x *UpdateStandardRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateStandardRequest) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *UpdateStandardRequest) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *UpdateStandardRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *UpdateStandardRequest) GetGradeLevel() string {
	if x != nil {
		return x.GradeLevel
	}
	return ""
}

func (x *UpdateStandardRequest) GetThematicUnit() string {
	if x != nil {
		return x.ThematicUnit
	}
	return ""
}

type UpdateStandardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *StandardItem          `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateStandardResponse) Reset() {
	*x = UpdateStandardResponse{}
	mi := &file_curricula_v1_curricula_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateStandardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateStandardResponse) ProtoMessage() {}

func (x *UpdateStandardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_curricula_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateStandardResponse.ProtoReflect.Descriptor instead.
func (*UpdateStandardResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_curricula_proto_rawDescGZIP(), []int{6}
}

func (x *UpdateStandardResponse) GetItem() *StandardItem {
	if x != nil {
		return x.Item
	}
	return nil
}

type DeleteStandardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteStandardRequest) Reset() {
	*x = DeleteStandardRequest{}
	mi := &file_curricula_v1_curricula_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteStandardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteStandardRequest) ProtoMessage() {}

func (x *DeleteStandardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_curricula_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteStandardRequest.ProtoReflect.Descriptor instead.
func (*DeleteStandardRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_curricula_proto_rawDescGZIP(), []int{7}
}

func (x *DeleteStandardRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteStandardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteStandardResponse) Reset() {
	*x = DeleteStandardResponse{}
	mi := &file_curricula_v1_curricula_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteStandardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteStandardResponse) ProtoMessage() {}

func (x *DeleteStandardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_curricula_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteStandardResponse.ProtoReflect.Descriptor instead.
func (*DeleteStandardResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_curricula_proto_rawDescGZIP(), []int{8}
}

type RestoreStandardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RestoreStandardRequest) Reset() {
	*x = RestoreStandardRequest{}
	mi := &file_curricula_v1_curricula_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RestoreStandardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RestoreStandardRequest) ProtoMessage() {}

func (x *RestoreStandardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_curricula_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RestoreStandardRequest.ProtoReflect.Descriptor instead.
func (*RestoreStandardRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_curricula_proto_rawDescGZIP(), []int{9}
}

func (x *RestoreStandardRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RestoreStandardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RestoreStandardResponse) Reset() {
	*x = RestoreStandardResponse{}
	mi := &file_curricula_v1_curricula_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RestoreStandardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RestoreStandardResponse) ProtoMessage() {}

func (x *RestoreStandardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_curricula_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RestoreStandardResponse.ProtoReflect.Descriptor instead.
func (*RestoreStandardResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_curricula_proto_rawDescGZIP(), []int{10}
}

type ExportStandardsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	IncludeDeleted bool                   `protobuf:"varint,1,opt,name=include_deleted,json=includeDeleted,proto3" json:"include_deleted,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExportStandardsRequest) Reset() {
	*x = ExportStandardsRequest{}
	mi := &file_curricula_v1_curricula_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStandardsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStandardsRequest) ProtoMessage() {}

func (x *ExportStandardsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_curricula_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStandardsRequest.ProtoReflect.Descriptor instead.
func (*ExportStandardsRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_curricula_proto_rawDescGZIP(), []int{11}
}

func (x *ExportStandardsRequest) GetIncludeDeleted() bool {
	if x != nil {
		return x.IncludeDeleted
	}
	return false
}

type ExportStandardsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportStandardsResponse) Reset() {
	*x = ExportStandardsResponse{}
	mi := &file_curricula_v1_curricula_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStandardsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStandardsResponse) ProtoMessage() {}

func (x *ExportStandardsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_curricula_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStandardsResponse.ProtoReflect.Descriptor instead.
func (*ExportStandardsResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_curricula_proto_rawDescGZIP(), []int{12}
}

func (x *ExportStandardsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportStandardsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_curricula_v1_curricula_proto protoreflect.FileDescriptor

const file_curricula_v1_curricula_proto_rawDesc = "" +
	"\n" +
	"\x1ccurricula/v1/curricula.proto\x12\fcurricula.v1\"\x8c\x02\n" +
	"\fStandardItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12\x18\n" +
	"\asubject\x18\x03 \x01(\tR\asubject\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x1f\n" +
	"\vgrade_level\x18\x05 \x01(\tR\n" +
	"gradeLevel\x12#\n" +
	"\rthematic_unit\x18\x06 \x01(\tR\fthematicUnit\x12\x18\n" +
	"\adeleted\x18\a \x01(\bR\adeleted\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"?\n" +
	"\x14ListStandardsRequest\x12'\n" +
	"\x0finclude_deleted\x18\x01 \x01(\bR\x0eincludeDeleted\"I\n" +
	"\x15ListStandardsResponse\x120\n" +
	"\x05items\x18\x01 \x03(\v2\x1a.curricula.v1.StandardItemR\x05items\"\xad\x01\n" +
	"\x15CreateStandardRequest\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x18\n" +
	"\asubject\x18\x02 \x01(\tR\asubject\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1f\n" +
	"\vgrade_level\x18\x04 \x01(\tR\n" +
	"gradeLevel\x12#\n" +
	"\rthematic_unit\x18\x05 \x01(\tR\fthematicUnit\"H\n" +
	"\x16CreateStandardResponse\x12.\n" +
	"\x04item\x18\x01 \x01(\v2\x1a.curricula.v1.StandardItemR\x04item\"\xbd\x01\n" +
	"\x15UpdateStandardRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12\x18\n" +
	"\asubject\x18\x03 \x01(\tR\asubject\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x1f\n" +
	"\vgrade_level\x18\x05 \x01(\tR\n" +
	"gradeLevel\x12#\n" +
	"\rthematic_unit\x18\x06 \x01(\tR\fthematicUnit\"H\n" +
	"\x16UpdateStandardResponse\x12.\n" +
	"\x04item\x18\x01 \x01(\v2\x1a.curricula.v1.StandardItemR\x04item\"'\n" +
	"\x15DeleteStandardRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x18\n" +
	"\x16DeleteStandardResponse\"(\n" +
	"\x16RestoreStandardRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x19\n" +
	"\x17RestoreStandardResponse\"A\n" +
	"\x16ExportStandardsRequest\x12'\n" +
	"\x0finclude_deleted\x18\x01 \x01(\bR\x0eincludeDeleted\"I\n" +
	"\x17ExportStandardsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xc4\x04\n" +
	"\x11CurriculumService\x12X\n" +
	"\rListStandards\x12\".curricula.v1.ListStandardsRequest\x1a#.curricula.v1.ListStandardsResponse\x12[\n" +
	"\x0eCreateStandard\x12#.curricula.v1.CreateStandardRequest\x1a$.curricula.v1.CreateStandardResponse\x12[\n" +
	"\x0eUpdateStandard\x12#.curricula.v1.UpdateStandardRequest\x1a$.curricula.v1.UpdateStandardResponse\x12[\n" +
	"\x0eDeleteStandard\x12#.curricula.v1.DeleteStandardRequest\x1a$.curricula.v1.DeleteStandardResponse\x12^\n" +
	"\x0fRestoreStandard\x12$.curricula.v1.RestoreStandardRequest\x1a%.curricula.v1.RestoreStandardResponse\x12^\n" +
	"\x0fExportStandards\x12$.curricula.v1.ExportStandardsRequest\x1a%.curricula.v1.ExportStandardsResponseBLZJgithub.com/brunoqueiroz/curricula-admin/gen/proto/curricula/v1;curriculav1b\x06proto3"

var (
	file_curricula_v1_curricula_proto_rawDescOnce sync.Once
	file_curricula_v1_curricula_proto_rawDescData []byte
)

func file_curricula_v1_curricula_proto_rawDescGZIP() []byte {
	file_curricula_v1_curricula_proto_rawDescOnce.Do(func() {
		file_curricula_v1_curricula_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_curricula_v1_curricula_proto_rawDesc), len(file_curricula_v1_curricula_proto_rawDesc)))
	})
	return file_curricula_v1_curricula_proto_rawDescData
}

var file_curricula_v1_curricula_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_curricula_v1_curricula_proto_goTypes = []any{
	(*StandardItem)(nil),            // 0: curricula.v1.StandardItem
	(*ListStandardsRequest)(nil),    // 1: curricula.v1.ListStandardsRequest
	(*ListStandardsResponse)(nil),   // 2: curricula.v1.ListStandardsResponse
	(*CreateStandardRequest)(nil),   // 3: curricula.v1.CreateStandardRequest
	(*CreateStandardResponse)(nil),  // 4: curricula.v1.CreateStandardResponse
	(*UpdateStandardRequest)(nil),   // 5: curricula.v1.UpdateStandardRequest
	(*UpdateStandardResponse)(nil),  // 6: curricula.v1.UpdateStandardResponse
	(*DeleteStandardRequest)(nil),   // 7: curricula.v1.DeleteStandardRequest
	(*DeleteStandardResponse)(nil),  // 8: curricula.v1.DeleteStandardResponse
	(*RestoreStandardRequest)(nil),  // 9: curricula.v1.RestoreStandardRequest
	(*RestoreStandardResponse)(nil), // 10: curricula.v1.RestoreStandardResponse
	(*ExportStandardsRequest)(nil),  // 11: curricula.v1.ExportStandardsRequest
	(*ExportStandardsResponse)(nil), // 12: curricula.v1.ExportStandardsResponse
}
var file_curricula_v1_curricula_proto_depIdxs = []int32{
	0,  // 0: curricula.v1.ListStandardsResponse.items:type_name -> curricula.v1.StandardItem
	0,  // 1: curricula.v1.CreateStandardResponse.item:type_name -> curricula.v1.StandardItem
	0,  // 2: curricula.v1.UpdateStandardResponse.item:type_name -> curricula.v1.StandardItem
	1,  // 3: curricula.v1.CurriculumService.ListStandards:input_type -> curricula.v1.ListStandardsRequest
	3,  // 4: curricula.v1.CurriculumService.CreateStandard:input_type -> curricula.v1.CreateStandardRequest
	5,  // 5: curricula.v1.CurriculumService.UpdateStandard:input_type -> curricula.v1.UpdateStandardRequest
	7,  // 6: curricula.v1.CurriculumService.DeleteStandard:input_type -> curricula.v1.DeleteStandardRequest
	9,  // 7: curricula.v1.CurriculumService.RestoreStandard:input_type -> curricula.v1.RestoreStandardRequest
	11, // 8: curricula.v1.CurriculumService.ExportStandards:input_type -> curricula.v1.ExportStandardsRequest
	2,  // 9: curricula.v1.CurriculumService.ListStandards:output_type -> curricula.v1.ListStandardsResponse
	4,  // 10: curricula.v1.CurriculumService.CreateStandard:output_type -> curricula.v1.CreateStandardResponse
	6,  // 11: curricula.v1.CurriculumService.UpdateStandard:output_type -> curricula.v1.UpdateStandardResponse
	8,  // 12: curricula.v1.CurriculumService.DeleteStandard:output_type -> curricula.v1.DeleteStandardResponse
	10, // 13: curricula.v1.CurriculumService.RestoreStandard:output_type -> curricula.v1.RestoreStandardResponse
	12, // 14: curricula.v1.CurriculumService.ExportStandards:output_type -> curricula.v1.ExportStandardsResponse
	9,  // [9:15] is the sub-list for method output_type
	3,  // [3:9] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_curricula_v1_curricula_proto_init() }
func file_curricula_v1_curricula_proto_init() {
	if File_curricula_v1_curricula_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_curricula_v1_curricula_proto_rawDesc), len(file_curricula_v1_curricula_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_curricula_v1_curricula_proto_goTypes,
		DependencyIndexes: file_curricula_v1_curricula_proto_depIdxs,
		MessageInfos:      file_curricula_v1_curricula_proto_msgTypes,
	}.Build()
	File_curricula_v1_curricula_proto = out.File
	file_curricula_v1_curricula_proto_goTypes = nil
	file_curricula_v1_curricula_proto_depIdxs = nil
}
