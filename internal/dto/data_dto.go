package dto

// SnapshotRequest optionally names the snapshot file inside the data
// directory; empty means the default.
type SnapshotRequest struct {
	Filename string `json:"filename"`
}

// ImportRequest points at a CSV file to import.
type ImportRequest struct {
	Path string `json:"path" validate:"required"`
}

// ExportRequest optionally names the output file inside the data directory.
type ExportRequest struct {
	Filename string `json:"filename"`
}

// FileResponse reports the path a data operation wrote or read.
type FileResponse struct {
	Path string `json:"path"`
}

// ImportStudentsResponse reports how many students a CSV import created.
type ImportStudentsResponse struct {
	Imported int `json:"imported"`
}
