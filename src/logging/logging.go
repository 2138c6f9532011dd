package logging

const (
	FilePath             = "File Path"
	VaultPath            = "Vault Path"
	DatabaseID           = "Database ID"
	PageID               = "Page ID"
	Title                = "Title"
	ImageName            = "Image"
	BlockCount           = "Blocks"
	Token                = "Token"
	Filter               = "Filter"
	FileCount            = "Files"
	PublishedCount       = "Published"
	FailedCount          = "Failed"
	SkippedCount         = "Skipped"
	DryRun               = "Dry Run"
	ValidationErr        = "Invalid configuration"
	DiscoveryErr         = "Failed to discover markdown files"
	FileReadErr          = "Failed to read markdown file"
	TranslateErr         = "Failed to translate markdown file"
	PageCreateErr        = "Failed to create Page"
	BlocksAppendErr      = "Failed to append Blocks to Page"
	DatabaseFetchErr     = "Failed to fetch Database"
	VaultEntrySkipped    = "Skipping unreadable vault entry"
	ImageNotFound        = "Image not found in vault"
	TitlePropertyMissing = "Database has no title property named Name, pages cannot be created"
)
