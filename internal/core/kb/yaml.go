package kb

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Default returns the catalog shipped with the binary.
func Default() (*KnowledgeBase, error) {
	kb, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return kb, nil
}

// LoadFile reads a catalog in the same YAML layout as the embedded one.
func LoadFile(path string) (*KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	kb, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	kb.source = SourceFile
	return kb, nil
}

// Parse decodes a YAML catalog. It walks the node tree instead of
// unmarshalling into maps so that declaration order survives.
func Parse(data []byte) (*KnowledgeBase, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	root := doc.Content[0]
	pairs, err := mappingPairs(root, "catalog")
	if err != nil {
		return nil, err
	}

	var (
		categories []Category
		policies   []PolicyEntry
	)
	for _, pair := range pairs {
		switch pair.key {
		case "products":
			categories, err = parseCategories(pair.value)
		case "policies":
			policies, err = parsePolicies(pair.value)
		default:
			err = fmt.Errorf("unknown catalog section %q (line %d)", pair.key, pair.line)
		}
		if err != nil {
			return nil, err
		}
	}

	return New(categories, policies)
}

type nodePair struct {
	key   string
	value *yaml.Node
	line  int
}

func mappingPairs(node *yaml.Node, what string) ([]nodePair, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s must be a mapping (line %d)", what, node.Line)
	}

	pairs := make([]nodePair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%s keys must be scalars (line %d)", what, k.Line)
		}
		pairs = append(pairs, nodePair{key: k.Value, value: v, line: k.Line})
	}
	return pairs, nil
}

func parseCategories(node *yaml.Node) ([]Category, error) {
	catPairs, err := mappingPairs(node, "products")
	if err != nil {
		return nil, err
	}

	categories := make([]Category, 0, len(catPairs))
	for _, cp := range catPairs {
		productPairs, err := mappingPairs(cp.value, "category "+cp.key)
		if err != nil {
			return nil, err
		}

		cat := Category{Name: cp.key}
		for _, pp := range productPairs {
			attrPairs, err := mappingPairs(pp.value, "product "+pp.key)
			if err != nil {
				return nil, err
			}

			product := ProductEntry{Name: pp.key, Category: cp.key}
			for _, ap := range attrPairs {
				if ap.value.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("attribute %q of %q must be a scalar (line %d)", ap.key, pp.key, ap.line)
				}
				product.Attributes = append(product.Attributes, Attribute{Key: ap.key, Value: ap.value.Value})
			}
			cat.Products = append(cat.Products, product)
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func parsePolicies(node *yaml.Node) ([]PolicyEntry, error) {
	pairs, err := mappingPairs(node, "policies")
	if err != nil {
		return nil, err
	}

	policies := make([]PolicyEntry, 0, len(pairs))
	for _, p := range pairs {
		if p.value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("policy %q must be a scalar (line %d)", p.key, p.line)
		}
		policies = append(policies, PolicyEntry{Name: p.key, Text: p.value.Value})
	}
	return policies, nil
}
