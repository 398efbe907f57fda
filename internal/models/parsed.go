package models

// ParsedRatingEntry is the transient result of parsing one spreadsheet cell
// pair for both assessment sides. It exists only during one import run and is
// never persisted. Empty strings mean "not supplied"; the merger leaves the
// corresponding columns untouched.
type ParsedRatingEntry struct {
	CompetencyTitle string
	LevelCode       string
	DefinitionID    string
	SelfRatingID    string
	SelfComment     string
	ManagerRatingID string
	ManagerComment  string
}

// Empty reports whether the entry carries neither a resolved rating nor a
// comment on either side. Such entries are skipped entirely by the merger.
func (e ParsedRatingEntry) Empty() bool {
	return e.SelfRatingID == "" && e.SelfComment == "" &&
		e.ManagerRatingID == "" && e.ManagerComment == ""
}

// HasSelf reports whether the self side carries data.
func (e ParsedRatingEntry) HasSelf() bool {
	return e.SelfRatingID != "" || e.SelfComment != ""
}

// HasManager reports whether the manager side carries data.
func (e ParsedRatingEntry) HasManager() bool {
	return e.ManagerRatingID != "" || e.ManagerComment != ""
}

// ParsedLevelAssessment is one decoded heatmap value: either the overall
// ("general") judgment or the judgment for one named area.
type ParsedLevelAssessment struct {
	Scope     string `json:"scope"`
	MainLevel int    `json:"mainLevel"`
	SubLevel  int    `json:"subLevel"`
}

// ImportResult is the diagnostic outcome of one import run: the ordered log
// lines produced during parsing and resolution, plus the aggregate
// assessments that were actually saved.
type ImportResult struct {
	Log         []string                `json:"log"`
	Assessments []ParsedLevelAssessment `json:"assessments"`
}
