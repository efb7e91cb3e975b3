package repository

// Factory describes access to the persistent domain repositories.
type Factory interface {
	Shops() ShopRepository
	Submissions() SubmissionRepository
}
