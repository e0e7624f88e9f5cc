package models

type ScoreRequest struct {
	ResumeText string `json:"resume_text"`
}

// ResumeScoreResponse is the fixed shape every valid model answer must match.
// All six fields are required; scores are not range-checked beyond being numeric.
type ResumeScoreResponse struct {
	Summary         string   `json:"summary"`
	SkillsScore     float64  `json:"skills_score"`
	ExperienceScore float64  `json:"experience_score"`
	OverallScore    float64  `json:"overall_score"`
	Feedback        string   `json:"feedback"`
	MissingAspects  []string `json:"missing_aspects"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
