package model

const (
	EntityName = "media"

	// Directory is the S3 prefix every package photo is stored under.
	Directory = "packages"
)
