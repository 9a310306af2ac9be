package domain

// ProjectRecord is the canonical configuration of one reported project.
// Empty strings mark optional identifiers as absent.
type ProjectRecord struct {
	ProjectID         string   `yaml:"id" json:"projectId"`
	DisplayName       string   `yaml:"name" json:"displayName"`
	Code              string   `yaml:"code,omitempty" json:"code,omitempty"`
	ClientName        string   `yaml:"client,omitempty" json:"clientName,omitempty"`
	SecondarySourceID string   `yaml:"sheet_id,omitempty" json:"secondarySourceId,omitempty"`
	ChannelID         string   `yaml:"channel_id,omitempty" json:"channelId,omitempty"`
	FolderID          string   `yaml:"folder_id,omitempty" json:"folderId,omitempty"`
	ClientDisciplines []string `yaml:"client_disciplines,omitempty" json:"clientDisciplines,omitempty"`
	Active            bool     `yaml:"active" json:"active"`
}

// HasSecondarySource reports whether the project references a schedule sheet.
func (p ProjectRecord) HasSecondarySource() bool {
	return p.SecondarySourceID != ""
}

// HasChannel reports whether the project has a chat channel for notifications.
func (p ProjectRecord) HasChannel() bool {
	return p.ChannelID != ""
}

// FindProject returns the record with the given id.
func FindProject(projects []ProjectRecord, projectID string) (ProjectRecord, bool) {
	for _, p := range projects {
		if p.ProjectID == projectID {
			return p, true
		}
	}
	return ProjectRecord{}, false
}

// ActiveProjects returns the active records, preserving order.
func ActiveProjects(projects []ProjectRecord) []ProjectRecord {
	active := make([]ProjectRecord, 0, len(projects))
	for _, p := range projects {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}
