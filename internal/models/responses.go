package models

type MessageResponse struct {
	Message string `json:"message"`
}

type DiagnosticsResponse struct {
	Backend      string   `json:"backend"`
	Database     string   `json:"database"`
	DatabaseURL  string   `json:"database_url"`
	DatabaseName string   `json:"database_name"`
	Collections  []string `json:"collections"`
}

type RoleListResponse struct {
	Roles []Role `json:"roles"`
}

type RoleResponse struct {
	Role *Role `json:"role"`
}

type CreateRoleResponse struct {
	ID string `json:"id"`
}

type ApplyResponse struct {
	ApplicantID    string   `json:"applicant_id"`
	SuggestedRoles []string `json:"suggested_roles"`
}

type UploadResumeResponse struct {
	ResumeText string `json:"resume_text"`
}

type StartInterviewResponse struct {
	InterviewID string `json:"interview_id"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type CodingStartResponse struct {
	StarterCode string `json:"starter_code"`
	Language    string `json:"language"`
}

type CodingRunResponse struct {
	Stdout string `json:"stdout"`
}

type CompleteResponse struct {
	ResultID       string `json:"result_id"`
	Communication  int    `json:"communication"`
	ProblemSolving int    `json:"problem_solving"`
	Technical      int    `json:"technical"`
	Summary        string `json:"summary"`
}

type ApplicantListResponse struct {
	Applicants []Applicant `json:"applicants"`
}

type InterviewListResponse struct {
	Interviews []Interview `json:"interviews"`
}
