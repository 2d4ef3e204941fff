package vicpen

import (
	"encoding/json"
	"io/ioutil"

	"github.com/vicpen/vicpen/imageio"
	"github.com/vicpen/vicpen/vic"
)

// LoadDocument loads a file in any supported format. The document only
// replaces anything once the whole file decoded, so a failed load never
// leaves a half-built document behind.
func LoadDocument(filename string) (*Document, error) {
	format, err := imageio.Identify(filename)
	if err != nil {
		return nil, err
	}
	if format == imageio.FormatUnknown {
		return loadNative(filename)
	}
	m, err := imageio.LoadImage(filename, format)
	if err != nil {
		return nil, err
	}
	doc := FromImage(m)
	doc.Filename = filename
	return doc, nil
}

func loadNative(filename string) (*Document, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	doc.Filename = filename
	return doc, nil
}

// SaveDocument writes the document to filename: the native format for the
// native extension, otherwise a rendered raster image in the format the
// extension names. On success the document is marked clean and remembers
// the path.
func SaveDocument(doc *Document, filename string) error {
	if imageio.IsNative(filename) {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		if err := ioutil.WriteFile(filename, data, 0644); err != nil {
			return err
		}
	} else {
		if err := imageio.Export(filename, doc.View(), vic.ViewNormal); err != nil {
			return err
		}
	}
	doc.Filename = filename
	doc.MarkClean()
	return nil
}
