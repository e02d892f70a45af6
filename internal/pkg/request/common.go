package request

// ByIDRequest is shared by endpoints taking a UUID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
