package constant

// DiplomaStatus is advisory: the source workflow never enforced an order
// between these states.
type DiplomaStatus string

const (
	DiplomaStatusRegistered DiplomaStatus = "registered"
	DiplomaStatusInProgress DiplomaStatus = "in_progress"
	DiplomaStatusReview     DiplomaStatus = "review"
	DiplomaStatusCompleted  DiplomaStatus = "completed"
	DiplomaStatusDefended   DiplomaStatus = "defended"
)

func (s DiplomaStatus) Valid() bool {
	switch s {
	case DiplomaStatusRegistered, DiplomaStatusInProgress, DiplomaStatusReview, DiplomaStatusCompleted, DiplomaStatusDefended:
		return true
	}
	return false
}

type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "draft"
	DocumentStatusGenerated DocumentStatus = "generated"
	DocumentStatusSigned    DocumentStatus = "signed"
	DocumentStatusArchived  DocumentStatus = "archived"
)

// documentTransitions is the allowed predecessor -> successors table for
// generated documents. A document always starts as draft.
var documentTransitions = map[DocumentStatus][]DocumentStatus{
	DocumentStatusDraft:     {DocumentStatusGenerated},
	DocumentStatusGenerated: {DocumentStatusSigned, DocumentStatusArchived},
	DocumentStatusSigned:    {DocumentStatusArchived},
	DocumentStatusArchived:  {},
}

// CanTransition reports whether a document may move from one status to
// another. Setting the same status again is a no-op and always allowed.
func (s DocumentStatus) CanTransition(to DocumentStatus) bool {
	if s == to {
		return true
	}
	for _, next := range documentTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s DocumentStatus) Valid() bool {
	_, ok := documentTransitions[s]
	return ok
}

type AnalysisStatus string

const (
	AnalysisStatusPending    AnalysisStatus = "pending"
	AnalysisStatusProcessing AnalysisStatus = "processing"
	AnalysisStatusCompleted  AnalysisStatus = "completed"
	AnalysisStatusFailed     AnalysisStatus = "failed"
)

type TemplateType string

const (
	TemplateTypeStudentOrder TemplateType = "student_order"
	TemplateTypeGroupOrder   TemplateType = "group_order"
	TemplateTypeContract     TemplateType = "contract"
	TemplateTypeAgreement    TemplateType = "agreement"
)

func (t TemplateType) Valid() bool {
	switch t {
	case TemplateTypeStudentOrder, TemplateTypeGroupOrder, TemplateTypeContract, TemplateTypeAgreement:
		return true
	}
	return false
}

type StudyForm string

const (
	StudyFormFullTime StudyForm = "full_time"
	StudyFormPartTime StudyForm = "part_time"
)

// DisplayRu returns the printed Russian label used in generated orders.
func (f StudyForm) DisplayRu() string {
	switch f {
	case StudyFormFullTime:
		return "Очная"
	case StudyFormPartTime:
		return "Заочная"
	}
	return ""
}

func (f StudyForm) Valid() bool {
	return f == StudyFormFullTime || f == StudyFormPartTime
}

type HistoryAction string

const (
	HistoryActionCreate  HistoryAction = "create"
	HistoryActionEdit    HistoryAction = "edit"
	HistoryActionComment HistoryAction = "comment"
	HistoryActionApprove HistoryAction = "approve"
	HistoryActionReject  HistoryAction = "reject"
	HistoryActionSign    HistoryAction = "sign"
	HistoryActionExport  HistoryAction = "export"
)
