package app

// AssertOwner allows a mutation only when the acting user is the recorded
// owner. An empty id on either side never matches.
func AssertOwner(actingUserID, ownerID string) error {
	if actingUserID == "" || ownerID == "" || actingUserID != ownerID {
		return ErrNotOwner
	}
	return nil
}
