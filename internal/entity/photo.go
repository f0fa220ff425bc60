package entity

// Photo represents a photo record from the gallery manifest.
type Photo struct {
	Title       string  `json:"title" yaml:"Title"`
	Subtitle    string  `json:"subtitle,omitempty" yaml:"Subtitle,omitempty"`
	Category    string  `json:"category,omitempty" yaml:"Category,omitempty"`
	Collections Strings `json:"collections,omitempty" yaml:"Collections,omitempty"`
	Tags        Strings `json:"tags,omitempty" yaml:"Tags,omitempty"`
	Full        string  `json:"full" yaml:"Full"`
	Thumb       string  `json:"thumb,omitempty" yaml:"Thumb,omitempty"`
}

// ThumbURI returns the thumbnail URI, or the full resolution URI if there is no thumbnail.
func (m Photo) ThumbURI() string {
	if m.Thumb == "" {
		return m.Full
	}

	return m.Thumb
}

// InCollection tests if the photo belongs to the named collection.
func (m Photo) InCollection(name string) bool {
	return m.Collections.Contains(name)
}

// HasTag tests if the photo is labeled with the tag.
func (m Photo) HasTag(tag string) bool {
	return m.Tags.Contains(tag)
}

// FirstTag returns the first tag or an empty string.
func (m Photo) FirstTag() string {
	return m.Tags.First()
}

// FirstCollection returns the first collection name or an empty string.
func (m Photo) FirstCollection() string {
	return m.Collections.First()
}

// Photos represents an ordered list of photos.
type Photos []Photo

// Clone returns a shallow copy so callers can't reorder the original list.
func (m Photos) Clone() Photos {
	if m == nil {
		return Photos{}
	}

	result := make(Photos, len(m))
	copy(result, m)

	return result
}
