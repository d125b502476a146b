package ctdf

type Trains []*Train

// FindByID returns the first train with the given id, ids are not guaranteed to be unique
func (t Trains) FindByID(id int) *Train {
	for _, train := range t {
		if train.ID == id {
			return train
		}
	}

	return nil
}
