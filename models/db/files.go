package dbmodels

type FileType string

const (
	ChecklistPDFFileType FileType = "checklist_pdf"
)

// FileStorage keeps metadata of objects uploaded to S3.
// The object body lives in the bucket under the record ID.
type FileStorage struct {
	BaseModel
	SubmissionID string   `gorm:"type:varchar(36);index"`
	FileType     FileType `gorm:"type:varchar(50)"`
	Name         string   `gorm:"type:text"`
	ContentType  string   `gorm:"type:varchar(100)"`
}
