package azdo

import "encoding/json"

// Project is a team project within the organization.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	State       string `json:"state,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

// Team is a team within a project.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ProjectName string `json:"projectName,omitempty"`
}

// IdentityRef identifies a user or group.
type IdentityRef struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	UniqueName  string `json:"uniqueName,omitempty"`
}

// TeamMember is one entry in a team's membership listing.
type TeamMember struct {
	Identity    IdentityRef `json:"identity"`
	IsTeamAdmin bool        `json:"isTeamAdmin,omitempty"`
}

// WorkItem is a work item with its field map. Fields carry the raw remote
// values (System.Title, System.State, ...) without reinterpretation.
type WorkItem struct {
	ID     int                        `json:"id"`
	Rev    int                        `json:"rev,omitempty"`
	Fields map[string]json.RawMessage `json:"fields,omitempty"`
	URL    string                     `json:"url,omitempty"`
}

// WorkItemRef is the id/url pair returned by a WIQL query.
type WorkItemRef struct {
	ID  int    `json:"id"`
	URL string `json:"url,omitempty"`
}

// wiqlResult is the response shape of a WIQL query.
type wiqlResult struct {
	QueryType string        `json:"queryType,omitempty"`
	WorkItems []WorkItemRef `json:"workItems"`
}

// Comment is a work item discussion comment.
type Comment struct {
	ID        int         `json:"id"`
	Text      string      `json:"text"`
	CreatedBy IdentityRef `json:"createdBy,omitempty"`
}

// Backlog is one backlog level configured for a team.
type Backlog struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Rank int    `json:"rank,omitempty"`
	Type string `json:"type,omitempty"`
}

// Board is a Kanban board provisioned for a team.
type Board struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Iteration is a sprint assigned to a team.
type Iteration struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Path       string              `json:"path,omitempty"`
	Attributes IterationAttributes `json:"attributes,omitempty"`
}

// IterationAttributes carries the sprint date window.
type IterationAttributes struct {
	StartDate  string `json:"startDate,omitempty"`
	FinishDate string `json:"finishDate,omitempty"`
	TimeFrame  string `json:"timeFrame,omitempty"`
}

// Repository is a Git repository within a project.
type Repository struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DefaultBranch string `json:"defaultBranch,omitempty"`
	WebURL        string `json:"webUrl,omitempty"`
	IsDisabled    bool   `json:"isDisabled,omitempty"`
}

// PullRequest is a Git pull request.
type PullRequest struct {
	PullRequestID int         `json:"pullRequestId"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	Status        string      `json:"status,omitempty"`
	SourceRefName string      `json:"sourceRefName,omitempty"`
	TargetRefName string      `json:"targetRefName,omitempty"`
	CreatedBy     IdentityRef `json:"createdBy,omitempty"`
	IsDraft       bool        `json:"isDraft,omitempty"`
}

// BuildDefinition is a pipeline definition.
type BuildDefinition struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Path        string `json:"path,omitempty"`
	QueueStatus string `json:"queueStatus,omitempty"`
}

// Build is one run of a build definition.
type Build struct {
	ID           int    `json:"id"`
	BuildNumber  string `json:"buildNumber,omitempty"`
	Status       string `json:"status,omitempty"`
	Result       string `json:"result,omitempty"`
	SourceBranch string `json:"sourceBranch,omitempty"`
}

// Wiki is a project wiki.
type Wiki struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// WikiPage is a wiki page with its rendered content.
type WikiPage struct {
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
}

// Alert is an advanced-security alert on a repository.
type Alert struct {
	AlertID   int    `json:"alertId"`
	Title     string `json:"title,omitempty"`
	Severity  string `json:"severity,omitempty"`
	State     string `json:"state,omitempty"`
	AlertType string `json:"alertType,omitempty"`
}

// SearchHit is one work item search result.
type SearchHit struct {
	Project ProjectRef        `json:"project"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ProjectRef is the short project reference used by search results.
type ProjectRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// searchResponse is the almsearch response envelope.
type searchResponse struct {
	Count   int         `json:"count"`
	Results []SearchHit `json:"results"`
}

// patchOperation is one JSON-patch operation for work item updates.
type patchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}
