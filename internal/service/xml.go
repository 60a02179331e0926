package service

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"

	"golang.org/x/net/html/charset"

	"tableview/backend/internal/model"
)

// XMLParser treats every child element of the document root as a row.
type XMLParser struct{}

type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Content string     `xml:",chardata"`
	Nodes   []xmlNode  `xml:",any"`
}

func (XMLParser) Format() string { return "xml" }

func (XMLParser) Parse(content []byte) (*model.Dataset, error) {
	var root xmlNode
	decoder := xml.NewDecoder(bytes.NewReader(content))
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(&root); err != nil {
		return nil, err
	}
	if len(root.Nodes) == 0 {
		return nil, errors.New("xpath ./* does not return any nodes")
	}

	cols := newColumnSet()
	rows := make([][]string, 0, len(root.Nodes))
	for _, node := range root.Nodes {
		var row []string
		// A repeated name within one row keeps its last value.
		put := func(name, value string) {
			row = setCell(row, cols.add(name), value)
		}

		for _, attr := range node.Attrs {
			if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
				continue
			}
			put(attr.Name.Local, attr.Value)
		}
		for _, child := range node.Nodes {
			if len(child.Nodes) > 0 {
				put(child.XMLName.Local, "")
				continue
			}
			put(child.XMLName.Local, strings.TrimSpace(child.Content))
		}
		if len(node.Attrs) == 0 && len(node.Nodes) == 0 {
			put(node.XMLName.Local, strings.TrimSpace(node.Content))
		}

		rows = append(rows, row)
	}

	return model.NewDataset(cols.names, typedRows(cols.len(), rows)), nil
}
