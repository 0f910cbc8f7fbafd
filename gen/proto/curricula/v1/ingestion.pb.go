// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: curricula/v1/ingestion.proto

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

type Outcome_State int32

const (
	Outcome_STATE_UNSPECIFIED Outcome_State = 0
	Outcome_STATE_IN_PROGRESS Outcome_State = 1
	Outcome_STATE_FAILED      Outcome_State = 2
	Outcome_STATE_CLASSIFIED  Outcome_State = 3
)

// Enum value maps for Outcome_State.
var (
	Outcome_State_name = map[int32]string{
		0: "STATE_UNSPECIFIED",
		1: "STATE_IN_PROGRESS",
		2: "STATE_FAILED",
		3: "STATE_CLASSIFIED",
	}
	Outcome_State_value = map[string]int32{
		"STATE_UNSPECIFIED": 0,
		"STATE_IN_PROGRESS": 1,
		"STATE_FAILED":      2,
		"STATE_CLASSIFIED":  3,
	}
)

func (x Outcome_State) Enum() *Outcome_State {
	p := new(Outcome_State)
	*p = x
	return p
}

func (x Outcome_State) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Outcome_State) Descriptor() protoreflect.EnumDescriptor {
	return file_curricula_v1_ingestion_proto_enumTypes[0].Descriptor()
}

func (Outcome_State) Type() protoreflect.EnumType {
	return &file_curricula_v1_ingestion_proto_enumTypes[0]
}

func (x Outcome_State) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Outcome_State.Descriptor instead.
func (Outcome_State) EnumDescriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{1, 0}
}

type Candidate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Subject       string                 `protobuf:"bytes,2,opt,name=subject,proto3" json:"subject,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	GradeLevel    string                 `protobuf:"bytes,4,opt,name=grade_level,json=gradeLevel,proto3" json:"grade_level,omitempty"`
	ThematicUnit  string                 `protobuf:"bytes,5,opt,name=thematic_unit,json=thematicUnit,proto3" json:"thematic_unit,omitempty"`
	Selected      bool                   `protobuf:"varint,6,opt,name=selected,proto3" json:"selected,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Candidate) Reset() {
	*x = Candidate{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Candidate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Candidate) ProtoMessage() {}

func (x *Candidate) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Candidate.ProtoReflect.Descriptor instead.
func (*Candidate) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{0}
}

func (x *Candidate) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Candidate) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *Candidate) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Candidate) GetGradeLevel() string {
	if x != nil {
		return x.GradeLevel
	}
	return ""
}

func (x *Candidate) GetThematicUnit() string {
	if x != nil {
		return x.ThematicUnit
	}
	return ""
}

func (x *Candidate) GetSelected() bool {
	if x != nil {
		return x.Selected
	}
	return false
}

// Outcome mirrors the pipeline result: FAILED carries error, CLASSIFIED
// carries the verdict plus candidates when the document is in domain.
type Outcome struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	State         Outcome_State          `protobuf:"varint,1,opt,name=state,proto3,enum=curricula.v1.Outcome_State" json:"state,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Error         string                 `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	InDomain      bool                   `protobuf:"varint,4,opt,name=in_domain,json=inDomain,proto3" json:"in_domain,omitempty"`
	Candidates    []*Candidate           `protobuf:"bytes,5,rep,name=candidates,proto3" json:"candidates,omitempty"`
	Message       string                 `protobuf:"bytes,6,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Outcome) Reset() {
	*x = Outcome{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Outcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Outcome) ProtoMessage() {}

func (x *Outcome) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Outcome.ProtoReflect.Descriptor instead.
func (*Outcome) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{1}
}

func (x *Outcome) GetState() Outcome_State {
	if x != nil {
		return x.State
	}
	return Outcome_STATE_UNSPECIFIED
}

func (x *Outcome) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Outcome) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *Outcome) GetInDomain() bool {
	if x != nil {
		return x.InDomain
	}
	return false
}

func (x *Outcome) GetCandidates() []*Candidate {
	if x != nil {
		return x.Candidates
	}
	return nil
}

func (x *Outcome) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type ExtractDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentRequest) Reset() {
	*x = ExtractDocumentRequest{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentRequest) ProtoMessage() {}

func (x *ExtractDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentRequest.ProtoReflect.Descriptor instead.
func (*ExtractDocumentRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractDocumentRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type ExtractDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Outcome       *Outcome               `protobuf:"bytes,1,opt,name=outcome,proto3" json:"outcome,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentResponse) Reset() {
	*x = ExtractDocumentResponse{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentResponse) ProtoMessage() {}

func (x *ExtractDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentResponse.ProtoReflect.Descriptor instead.
func (*ExtractDocumentResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{3}
}

func (x *ExtractDocumentResponse) GetOutcome() *Outcome {
	if x != nil {
		return x.Outcome
	}
	return nil
}

type GetOutcomeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOutcomeRequest) Reset() {
	*x = GetOutcomeRequest{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOutcomeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOutcomeRequest) ProtoMessage() {}

func (x *GetOutcomeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOutcomeRequest.ProtoReflect.Descriptor instead.
func (*GetOutcomeRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{4}
}

type GetOutcomeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Outcome       *Outcome               `protobuf:"bytes,1,opt,name=outcome,proto3" json:"outcome,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOutcomeResponse) Reset() {
	*x = GetOutcomeResponse{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOutcomeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOutcomeResponse) ProtoMessage() {}

func (x *GetOutcomeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOutcomeResponse.ProtoReflect.Descriptor instead.
func (*GetOutcomeResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{5}
}

func (x *GetOutcomeResponse) GetOutcome() *Outcome {
	if x != nil {
		return x.Outcome
	}
	return nil
}

type ToggleCandidateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Index         int32                  `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToggleCandidateRequest) Reset() {
	*x = ToggleCandidateRequest{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToggleCandidateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToggleCandidateRequest) ProtoMessage() {}

func (x *ToggleCandidateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToggleCandidateRequest.ProtoReflect.Descriptor instead.
func (*ToggleCandidateRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{6}
}

func (x *ToggleCandidateRequest) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

type ToggleCandidateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Selected      bool                   `protobuf:"varint,1,opt,name=selected,proto3" json:"selected,omitempty"`
	SelectedCount int32                  `protobuf:"varint,2,opt,name=selected_count,json=selectedCount,proto3" json:"selected_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToggleCandidateResponse) Reset() {
	*x = ToggleCandidateResponse{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToggleCandidateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToggleCandidateResponse) ProtoMessage() {}

func (x *ToggleCandidateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToggleCandidateResponse.ProtoReflect.Descriptor instead.
func (*ToggleCandidateResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{7}
}

func (x *ToggleCandidateResponse) GetSelected() bool {
	if x != nil {
		return x.Selected
	}
	return false
}

func (x *ToggleCandidateResponse) GetSelectedCount() int32 {
	if x != nil {
		return x.SelectedCount
	}
	return 0
}

type ToggleAllRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToggleAllRequest) Reset() {
	*x = ToggleAllRequest{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToggleAllRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToggleAllRequest) ProtoMessage() {}

func (x *ToggleAllRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToggleAllRequest.ProtoReflect.Descriptor instead.
func (*ToggleAllRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{8}
}

type ToggleAllResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SelectedCount int32                  `protobuf:"varint,1,opt,name=selected_count,json=selectedCount,proto3" json:"selected_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToggleAllResponse) Reset() {
	*x = ToggleAllResponse{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToggleAllResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToggleAllResponse) ProtoMessage() {}

func (x *ToggleAllResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToggleAllResponse.ProtoReflect.Descriptor instead.
func (*ToggleAllResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{9}
}

func (x *ToggleAllResponse) GetSelectedCount() int32 {
	if x != nil {
		return x.SelectedCount
	}
	return 0
}

type SelectAllRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SelectAllRequest) Reset() {
	*x = SelectAllRequest{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SelectAllRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SelectAllRequest) ProtoMessage() {}

func (x *SelectAllRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SelectAllRequest.ProtoReflect.Descriptor instead.
func (*SelectAllRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{10}
}

type SelectAllResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SelectedCount int32                  `protobuf:"varint,1,opt,name=selected_count,json=selectedCount,proto3" json:"selected_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SelectAllResponse) Reset() {
	*x = SelectAllResponse{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SelectAllResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SelectAllResponse) ProtoMessage() {}

func (x *SelectAllResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SelectAllResponse.ProtoReflect.Descriptor instead.
func (*SelectAllResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{11}
}

func (x *SelectAllResponse) GetSelectedCount() int32 {
	if x != nil {
		return x.SelectedCount
	}
	return 0
}

type SelectNoneRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SelectNoneRequest) Reset() {
	*x = SelectNoneRequest{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SelectNoneRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SelectNoneRequest) ProtoMessage() {}

func (x *SelectNoneRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SelectNoneRequest.ProtoReflect.Descriptor instead.
func (*SelectNoneRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{12}
}

type SelectNoneResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SelectNoneResponse) Reset() {
	*x = SelectNoneResponse{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SelectNoneResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SelectNoneResponse) ProtoMessage() {}

func (x *SelectNoneResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SelectNoneResponse.ProtoReflect.Descriptor instead.
func (*SelectNoneResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{13}
}

type CommitSelectedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitSelectedRequest) Reset() {
	*x = CommitSelectedRequest{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitSelectedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitSelectedRequest) ProtoMessage() {}

func (x *CommitSelectedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitSelectedRequest.ProtoReflect.Descriptor instead.
func (*CommitSelectedRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{14}
}

type CommitSelectedResponse struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	CreatedCount int32                  `protobuf:"varint,1,opt,name=created_count,json=createdCount,proto3" json:"created_count,omitempty"`
	// Set when the commit stopped mid-batch; created_count rows persisted.
	Error         string `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitSelectedResponse) Reset() {
	*x = CommitSelectedResponse{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitSelectedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitSelectedResponse) ProtoMessage() {}

func (x *CommitSelectedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitSelectedResponse.ProtoReflect.Descriptor instead.
func (*CommitSelectedResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{15}
}

func (x *CommitSelectedResponse) GetCreatedCount() int32 {
	if x != nil {
		return x.CreatedCount
	}
	return 0
}

func (x *CommitSelectedResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type DiscardOutcomeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DiscardOutcomeRequest) Reset() {
	*x = DiscardOutcomeRequest{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiscardOutcomeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiscardOutcomeRequest) ProtoMessage() {}

func (x *DiscardOutcomeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiscardOutcomeRequest.ProtoReflect.Descriptor instead.
func (*DiscardOutcomeRequest) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{16}
}

type DiscardOutcomeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DiscardOutcomeResponse) Reset() {
	*x = DiscardOutcomeResponse{}
	mi := &file_curricula_v1_ingestion_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiscardOutcomeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiscardOutcomeResponse) ProtoMessage() {}

func (x *DiscardOutcomeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curricula_v1_ingestion_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiscardOutcomeResponse.ProtoReflect.Descriptor instead.
func (*DiscardOutcomeResponse) Descriptor() ([]byte, []int) {
	return file_curricula_v1_ingestion_proto_rawDescGZIP(), []int{17}
}

var File_curricula_v1_ingestion_proto protoreflect.FileDescriptor

const file_curricula_v1_ingestion_proto_rawDesc = "" +
	"\n" +
	"\x1ccurricula/v1/ingestion.proto\x12\fcurricula.v1\"\xbd\x01\n" +
	"\tCandidate\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x18\n" +
	"\asubject\x18\x02 \x01(\tR\asubject\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1f\n" +
	"\vgrade_level\x18\x04 \x01(\tR\n" +
	"gradeLevel\x12#\n" +
	"\rthematic_unit\x18\x05 \x01(\tR\fthematicUnit\x12\x1a\n" +
	"\bselected\x18\x06 \x01(\bR\bselected\"\xbe\x02\n" +
	"\aOutcome\x121\n" +
	"\x05state\x18\x01 \x01(\x0e2\x1b.curricula.v1.Outcome.StateR\x05state\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12\x14\n" +
	"\x05error\x18\x03 \x01(\tR\x05error\x12\x1b\n" +
	"\tin_domain\x18\x04 \x01(\bR\binDomain\x127\n" +
	"\n" +
	"candidates\x18\x05 \x03(\v2\x17.curricula.v1.CandidateR\n" +
	"candidates\x12\x18\n" +
	"\amessage\x18\x06 \x01(\tR\amessage\"]\n" +
	"\x05State\x12\x15\n" +
	"\x11STATE_UNSPECIFIED\x10\x00\x12\x15\n" +
	"\x11STATE_IN_PROGRESS\x10\x01\x12\x10\n" +
	"\fSTATE_FAILED\x10\x02\x12\x14\n" +
	"\x10STATE_CLASSIFIED\x10\x03\",\n" +
	"\x16ExtractDocumentRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"J\n" +
	"\x17ExtractDocumentResponse\x12/\n" +
	"\aoutcome\x18\x01 \x01(\v2\x15.curricula.v1.OutcomeR\aoutcome\"\x13\n" +
	"\x11GetOutcomeRequest\"E\n" +
	"\x12GetOutcomeResponse\x12/\n" +
	"\aoutcome\x18\x01 \x01(\v2\x15.curricula.v1.OutcomeR\aoutcome\".\n" +
	"\x16ToggleCandidateRequest\x12\x14\n" +
	"\x05index\x18\x01 \x01(\x05R\x05index\"\\\n" +
	"\x17ToggleCandidateResponse\x12\x1a\n" +
	"\bselected\x18\x01 \x01(\bR\bselected\x12%\n" +
	"\x0eselected_count\x18\x02 \x01(\x05R\rselectedCount\"\x12\n" +
	"\x10ToggleAllRequest\":\n" +
	"\x11ToggleAllResponse\x12%\n" +
	"\x0eselected_count\x18\x01 \x01(\x05R\rselectedCount\"\x12\n" +
	"\x10SelectAllRequest\":\n" +
	"\x11SelectAllResponse\x12%\n" +
	"\x0eselected_count\x18\x01 \x01(\x05R\rselectedCount\"\x13\n" +
	"\x11SelectNoneRequest\"\x14\n" +
	"\x12SelectNoneResponse\"\x17\n" +
	"\x15CommitSelectedRequest\"S\n" +
	"\x16CommitSelectedResponse\x12#\n" +
	"\rcreated_count\x18\x01 \x01(\x05R\fcreatedCount\x12\x14\n" +
	"\x05error\x18\x02 \x01(\tR\x05error\"\x17\n" +
	"\x15DiscardOutcomeRequest\"\x18\n" +
	"\x16DiscardOutcomeResponse2\xca\x05\n" +
	"\x10IngestionService\x12^\n" +
	"\x0fExtractDocument\x12$.curricula.v1.ExtractDocumentRequest\x1a%.curricula.v1.ExtractDocumentResponse\x12O\n" +
	"\n" +
	"GetOutcome\x12\x1f.curricula.v1.GetOutcomeRequest\x1a .curricula.v1.GetOutcomeResponse\x12^\n" +
	"\x0fToggleCandidate\x12$.curricula.v1.ToggleCandidateRequest\x1a%.curricula.v1.ToggleCandidateResponse\x12L\n" +
	"\tToggleAll\x12\x1e.curricula.v1.ToggleAllRequest\x1a\x1f.curricula.v1.ToggleAllResponse\x12L\n" +
	"\tSelectAll\x12\x1e.curricula.v1.SelectAllRequest\x1a\x1f.curricula.v1.SelectAllResponse\x12O\n" +
	"\n" +
	"SelectNone\x12\x1f.curricula.v1.SelectNoneRequest\x1a .curricula.v1.SelectNoneResponse\x12[\n" +
	"\x0eCommitSelected\x12#.curricula.v1.CommitSelectedRequest\x1a$.curricula.v1.CommitSelectedResponse\x12[\n" +
	"\x0eDiscardOutcome\x12#.curricula.v1.DiscardOutcomeRequest\x1a$.curricula.v1.DiscardOutcomeResponseBLZJgithub.com/brunoqueiroz/curricula-admin/gen/proto/curricula/v1;curriculav1b\x06proto3"

var (
	file_curricula_v1_ingestion_proto_rawDescOnce sync.Once
	file_curricula_v1_ingestion_proto_rawDescData []byte
)

func file_curricula_v1_ingestion_proto_rawDescGZIP() []byte {
	file_curricula_v1_ingestion_proto_rawDescOnce.Do(func() {
		file_curricula_v1_ingestion_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_curricula_v1_ingestion_proto_rawDesc), len(file_curricula_v1_ingestion_proto_rawDesc)))
	})
	return file_curricula_v1_ingestion_proto_rawDescData
}

var file_curricula_v1_ingestion_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_curricula_v1_ingestion_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_curricula_v1_ingestion_proto_goTypes = []any{
	(Outcome_State)(0),              // 0: curricula.v1.Outcome.State
	(*Candidate)(nil),               // 1: curricula.v1.Candidate
	(*Outcome)(nil),                 // 2: curricula.v1.Outcome
	(*ExtractDocumentRequest)(nil),  // 3: curricula.v1.ExtractDocumentRequest
	(*ExtractDocumentResponse)(nil), // 4: curricula.v1.ExtractDocumentResponse
	(*GetOutcomeRequest)(nil),       // 5: curricula.v1.GetOutcomeRequest
	(*GetOutcomeResponse)(nil),      // 6: curricula.v1.GetOutcomeResponse
	(*ToggleCandidateRequest)(nil),  // 7: curricula.v1.ToggleCandidateRequest
	(*ToggleCandidateResponse)(nil), // 8: curricula.v1.ToggleCandidateResponse
	(*ToggleAllRequest)(nil),        // 9: curricula.v1.ToggleAllRequest
	(*ToggleAllResponse)(nil),       // 10: curricula.v1.ToggleAllResponse
	(*SelectAllRequest)(nil),        // 11: curricula.v1.SelectAllRequest
	(*SelectAllResponse)(nil),       // 12: curricula.v1.SelectAllResponse
	(*SelectNoneRequest)(nil),       // 13: curricula.v1.SelectNoneRequest
	(*SelectNoneResponse)(nil),      // 14: curricula.v1.SelectNoneResponse
	(*CommitSelectedRequest)(nil),   // 15: curricula.v1.CommitSelectedRequest
	(*CommitSelectedResponse)(nil),  // 16: curricula.v1.CommitSelectedResponse
	(*DiscardOutcomeRequest)(nil),   // 17: curricula.v1.DiscardOutcomeRequest
	(*DiscardOutcomeResponse)(nil),  // 18: curricula.v1.DiscardOutcomeResponse
}
var file_curricula_v1_ingestion_proto_depIdxs = []int32{
	0,  // 0: curricula.v1.Outcome.state:type_name -> curricula.v1.Outcome.State
	1,  // 1: curricula.v1.Outcome.candidates:type_name -> curricula.v1.Candidate
	2,  // 2: curricula.v1.ExtractDocumentResponse.outcome:type_name -> curricula.v1.Outcome
	2,  // 3: curricula.v1.GetOutcomeResponse.outcome:type_name -> curricula.v1.Outcome
	3,  // 4: curricula.v1.IngestionService.ExtractDocument:input_type -> curricula.v1.ExtractDocumentRequest
	5,  // 5: curricula.v1.IngestionService.GetOutcome:input_type -> curricula.v1.GetOutcomeRequest
	7,  // 6: curricula.v1.IngestionService.ToggleCandidate:input_type -> curricula.v1.ToggleCandidateRequest
	9,  // 7: curricula.v1.IngestionService.ToggleAll:input_type -> curricula.v1.ToggleAllRequest
	11, // 8: curricula.v1.IngestionService.SelectAll:input_type -> curricula.v1.SelectAllRequest
	13, // 9: curricula.v1.IngestionService.SelectNone:input_type -> curricula.v1.SelectNoneRequest
	15, // 10: curricula.v1.IngestionService.CommitSelected:input_type -> curricula.v1.CommitSelectedRequest
	17, // 11: curricula.v1.IngestionService.DiscardOutcome:input_type -> curricula.v1.DiscardOutcomeRequest
	4,  // 12: curricula.v1.IngestionService.ExtractDocument:output_type -> curricula.v1.ExtractDocumentResponse
	6,  // 13: curricula.v1.IngestionService.GetOutcome:output_type -> curricula.v1.GetOutcomeResponse
	8,  // 14: curricula.v1.IngestionService.ToggleCandidate:output_type -> curricula.v1.ToggleCandidateResponse
	10, // 15: curricula.v1.IngestionService.ToggleAll:output_type -> curricula.v1.ToggleAllResponse
	12, // 16: curricula.v1.IngestionService.SelectAll:output_type -> curricula.v1.SelectAllResponse
	14, // 17: curricula.v1.IngestionService.SelectNone:output_type -> curricula.v1.SelectNoneResponse
	16, // 18: curricula.v1.IngestionService.CommitSelected:output_type -> curricula.v1.CommitSelectedResponse
	18, // 19: curricula.v1.IngestionService.DiscardOutcome:output_type -> curricula.v1.DiscardOutcomeResponse
	12, // [12:20] is the sub-list for method output_type
	4,  // [4:12] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_curricula_v1_ingestion_proto_init() }
func file_curricula_v1_ingestion_proto_init() {
	if File_curricula_v1_ingestion_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_curricula_v1_ingestion_proto_rawDesc), len(file_curricula_v1_ingestion_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_curricula_v1_ingestion_proto_goTypes,
		DependencyIndexes: file_curricula_v1_ingestion_proto_depIdxs,
		EnumInfos:         file_curricula_v1_ingestion_proto_enumTypes,
		MessageInfos:      file_curricula_v1_ingestion_proto_msgTypes,
	}.Build()
	File_curricula_v1_ingestion_proto = out.File
	file_curricula_v1_ingestion_proto_goTypes = nil
	file_curricula_v1_ingestion_proto_depIdxs = nil
}
