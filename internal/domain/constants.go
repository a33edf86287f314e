package domain

// Time format constants
const (
	TimeFormat    = "15:04"      // HH:MM
	DateKeyFormat = "2006-01-02" // YYYY-MM-DD, ключ группировки по дню
)

// Business validation constants
const (
	MaxDocumentNameLength = 255
	MaxUploadSizeBytes    = 10 << 20 // 10 MB, лимит проксируемой загрузки
)

// Роль абитуриента, которую выдаёт admission API при логине
const RoleApplicant = "applicant"
