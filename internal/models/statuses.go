package models

type UserRole string
type UserStatus string
type SkillProficiency string
type LanguageProficiency string
type ProjectStatus string
type TeamMemberRole string
type RequirementPriority string
type TaskStatus string
type TaskPriority string
type ApplicationType string
type ApplicationStatus string
type StageStatus string
type InterviewStatus string
type EvaluationStatus string
type FeedbackType string
type DocumentStatus string
type NotificationType string

const (
	UserRoleAdmin       UserRole = "admin"
	UserRoleHR          UserRole = "hr"
	UserRoleLeadProject UserRole = "lead_project"
	UserRoleVolunteer   UserRole = "volunteer"
	UserRoleUnassigned  UserRole = "unassigned"

	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusDeleted   UserStatus = "deleted"

	SkillBeginner     SkillProficiency = "beginner"
	SkillIntermediate SkillProficiency = "intermediate"
	SkillAdvanced     SkillProficiency = "advanced"
	SkillExpert       SkillProficiency = "expert"

	LanguageBasic          LanguageProficiency = "basic"
	LanguageConversational LanguageProficiency = "conversational"
	LanguageFluent         LanguageProficiency = "fluent"
	LanguageNative         LanguageProficiency = "native"

	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"

	TeamRoleLead   TeamMemberRole = "lead"
	TeamRoleMember TeamMemberRole = "member"
	TeamRoleMentor TeamMemberRole = "mentor"

	RequirementNiceToHave RequirementPriority = "nice_to_have"
	RequirementImportant  RequirementPriority = "important"
	RequirementCritical   RequirementPriority = "critical"

	TaskStatusBacklog    TaskStatus = "backlog"
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusTesting    TaskStatus = "testing"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusBlocked    TaskStatus = "blocked"

	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"

	ApplicationTypeVolunteer   ApplicationType = "volunteer"
	ApplicationTypeInternship  ApplicationType = "internship"
	ApplicationTypePartnership ApplicationType = "partnership"

	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusInReview  ApplicationStatus = "in_review"
	ApplicationStatusInterview ApplicationStatus = "interview_scheduled"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"

	StageStatusPending    StageStatus = "pending"
	StageStatusInProgress StageStatus = "in_progress"
	StageStatusCompleted  StageStatus = "completed"
	StageStatusSkipped    StageStatus = "skipped"

	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
	InterviewStatusNoShow    InterviewStatus = "no_show"

	EvaluationStatusPending    EvaluationStatus = "pending"
	EvaluationStatusInProgress EvaluationStatus = "in_progress"
	EvaluationStatusCompleted  EvaluationStatus = "completed"

	FeedbackTypePraise     FeedbackType = "praise"
	FeedbackTypeSuggestion FeedbackType = "suggestion"
	FeedbackTypeConcern    FeedbackType = "concern"
	FeedbackTypeComplaint  FeedbackType = "complaint"

	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusVerified DocumentStatus = "verified"
	DocumentStatusRejected DocumentStatus = "rejected"
	DocumentStatusExpired  DocumentStatus = "expired"

	NotificationTypeTaskAssigned      NotificationType = "task_assigned"
	NotificationTypeApplicationUpdate NotificationType = "application_update"
	NotificationTypeEvaluationDue     NotificationType = "evaluation_due"
	NotificationTypeTeamInvite        NotificationType = "team_invite"
	NotificationTypeSystem            NotificationType = "system"
)

// AllUserStatuses перечисляет закрытый домен статусов пользователя.
// Генераторы выбирают значения только из этих списков.
var (
	AllUserStatuses        = []UserStatus{UserStatusActive, UserStatusInactive, UserStatusSuspended, UserStatusDeleted}
	AllSkillProficiencies  = []SkillProficiency{SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert}
	AllLanguageLevels      = []LanguageProficiency{LanguageBasic, LanguageConversational, LanguageFluent, LanguageNative}
	AllProjectStatuses     = []ProjectStatus{ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusCancelled}
	AllRequirementLevels   = []RequirementPriority{RequirementNiceToHave, RequirementImportant, RequirementCritical}
	AllTaskStatuses        = []TaskStatus{TaskStatusBacklog, TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusTesting, TaskStatusDone, TaskStatusBlocked}
	AllTaskPriorities      = []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent}
	AllApplicationTypes    = []ApplicationType{ApplicationTypeVolunteer, ApplicationTypeInternship, ApplicationTypePartnership}
	AllApplicationStatuses = []ApplicationStatus{ApplicationStatusSubmitted, ApplicationStatusInReview, ApplicationStatusInterview, ApplicationStatusAccepted, ApplicationStatusRejected}
	AllStageStatuses       = []StageStatus{StageStatusPending, StageStatusInProgress, StageStatusCompleted, StageStatusSkipped}
	AllInterviewStatuses   = []InterviewStatus{InterviewStatusScheduled, InterviewStatusCompleted, InterviewStatusCancelled, InterviewStatusNoShow}
	AllFeedbackTypes       = []FeedbackType{FeedbackTypePraise, FeedbackTypeSuggestion, FeedbackTypeConcern, FeedbackTypeComplaint}
	AllDocumentStatuses    = []DocumentStatus{DocumentStatusPending, DocumentStatusVerified, DocumentStatusRejected, DocumentStatusExpired}
	AllNotificationTypes   = []NotificationType{NotificationTypeTaskAssigned, NotificationTypeApplicationUpdate, NotificationTypeEvaluationDue, NotificationTypeTeamInvite, NotificationTypeSystem}
)

// IsTerminal сообщает, является ли статус заявки конечным.
// completed_at заполняется только для конечных статусов.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}
