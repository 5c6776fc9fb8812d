package constants

// JobStatus is the canonical status for rows in upload_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "pending"    // batch accepted, not started
	JobStatusProcessing JobStatus = "processing" // in progress
	JobStatusCompleted  JobStatus = "completed"  // finished with zero failed files
	JobStatusError      JobStatus = "error"      // finished with at least one failed file
)

// JobStatuses holds the allowed values for the upload_job status field.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusProcessing),
	string(JobStatusCompleted),
	string(JobStatusError),
}

// IsTerminal reports whether a job status is final.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusError
}

// ImageType classifies rows in product_image.
type ImageType string

const (
	ImageTypeItem    ImageType = "item"    // photo of the product itself
	ImageTypeLabel   ImageType = "label"   // photo of the garment tag
	ImageTypeCollage ImageType = "collage" // composed promotional image
)

// ImageTypes holds the allowed values for the product_image image_type field.
var ImageTypes = []string{
	string(ImageTypeItem),
	string(ImageTypeLabel),
	string(ImageTypeCollage),
}

// FieldMissing marks a field that extraction looked for and could not
// determine. Distinct from "" (never looked) so the merge rule can let a
// later source fill it in.
const FieldMissing = "missing"
