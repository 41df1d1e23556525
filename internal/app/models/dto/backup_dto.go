package dto

// BackupRequest optionally narrows which collections to snapshot.
// Empty means the full default set.
type BackupRequest struct {
	Collections []string `json:"collections,omitempty" example:"notices,faculty,gallery"`
}

// BackupResponse reports a completed backup.
type BackupResponse struct {
	Success  bool   `json:"success"`
	FilePath string `json:"filePath,omitempty"`
}
