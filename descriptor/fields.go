/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package descriptor

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"dirpx.dev/vo/apis"
	uref "dirpx.dev/vo/utils/reflect"
)

// TagName is the struct tag key read for field annotations.
//
//	Amount float64 `vo:"precision=2"`
//	Ratio  float64 `vo:"sigfigs=4"`
//	Code   string  `vo:"compare=ordinal-ignore-case"`
//	Tags   []string `vo:"unordered"`
//	cache  int      `vo:"-"`
const TagName = "vo"

var (
	precisionDeclarer        = reflect.TypeFor[apis.PrecisionDeclarer]()
	stringComparisonDeclarer = reflect.TypeFor[apis.StringComparisonDeclarer]()
)

// Fields enumerates the fields of the value-object type t (a struct or a
// pointer to one) and attaches their annotations.
//
// Fields are the exported, non-embedded fields visible on the struct,
// including fields promoted from embedded structs, in declaration order.
// Fields promoted through embedded pointers and fields tagged `vo:"-"` are
// skipped. Field annotations come from the struct tag, overridden by
// cfg.Fields; type annotations come from cfg.Type, falling back to the
// PrecisionDeclarer and StringComparisonDeclarer methods of the type.
func Fields(t reflect.Type, cfg apis.Config) ([]apis.Field, error) {
	if t == nil {
		return nil, errors.Wrap(apis.ErrMissingArgument, "descriptor: nil type")
	}
	st := uref.Indirect(t)
	if st.Kind() != reflect.Struct {
		return nil, errors.Wrapf(apis.ErrInvalidConfig, "descriptor: %v is not a struct", t)
	}
	typeAnn, err := typeAnnotations(st, cfg.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "descriptor: %v", t)
	}

	var fields []apis.Field
	seen := make(map[string]string)
	for _, sf := range reflect.VisibleFields(st) {
		if !sf.IsExported() || embeddedStruct(sf) || throughPointer(st, sf.Index) {
			continue
		}
		tag := sf.Tag.Get(TagName)
		if tag == "-" {
			continue
		}
		key := uref.FoldName(sf.Name)
		if other, dup := seen[key]; dup {
			return nil, errors.Wrapf(apis.ErrInvalidConfig,
				"descriptor: %v declares fields %q and %q, names must differ ignoring case", t, other, sf.Name)
		}
		seen[key] = sf.Name

		ann, err := parseTag(tag)
		if err != nil {
			return nil, errors.Wrapf(err, "descriptor: tag of field %q of %v", sf.Name, t)
		}
		if over, ok := cfg.Fields[key]; ok {
			ann = merge(ann, over)
		}
		if err := validate(sf.Type, ann); err != nil {
			return nil, errors.Wrapf(err, "descriptor: field %q of %v", sf.Name, t)
		}

		fields = append(fields, apis.Field{
			Name:            sf.Name,
			Type:            sf.Type,
			Owner:           t,
			Index:           sf.Index,
			Accessor:        accessor(st, sf.Name, sf.Index),
			Annotations:     ann,
			TypeAnnotations: typeAnn,
		})
	}

	for key := range cfg.Fields {
		if _, ok := seen[key]; !ok {
			return nil, errors.Wrapf(apis.ErrFieldNotFound, "descriptor: %v has no field %q", t, key)
		}
	}
	return fields, nil
}

// accessor reads the field at index from an owner of struct type st or *st.
func accessor(st reflect.Type, name string, index []int) apis.Accessor {
	return apis.AccessorFunc(func(owner reflect.Value) (reflect.Value, error) {
		owner = uref.Concrete(owner)
		if owner.Kind() == reflect.Pointer {
			if owner.IsNil() {
				return reflect.Value{}, errors.Wrapf(apis.ErrMissingArgument, "nil owner of field %q", name)
			}
			owner = owner.Elem()
		}
		if !owner.IsValid() {
			return reflect.Value{}, errors.Wrapf(apis.ErrMissingArgument, "owner of field %q", name)
		}
		if owner.Type() != st {
			return reflect.Value{}, errors.Wrapf(apis.ErrFieldNotFound, "%v has no field %q of %v", owner.Type(), name, st)
		}
		return owner.FieldByIndex(index), nil
	})
}

func typeAnnotations(st reflect.Type, declared apis.Annotations) (apis.Annotations, error) {
	ann := declared
	pt := reflect.PointerTo(st)
	if ann.Precision == nil && pt.Implements(precisionDeclarer) {
		p := reflect.New(st).Interface().(apis.PrecisionDeclarer).VOPrecision()
		ann.Precision = &p
	}
	if ann.StringComparison == nil && pt.Implements(stringComparisonDeclarer) {
		c := reflect.New(st).Interface().(apis.StringComparisonDeclarer).VOStringComparison()
		ann.StringComparison = &c
	}
	if ann.Precision != nil {
		if err := ann.Precision.Validate(); err != nil {
			return apis.Annotations{}, err
		}
	}
	if ann.StringComparison != nil && !ann.StringComparison.Valid() {
		return apis.Annotations{}, errors.Wrapf(apis.ErrInvalidConfig, "string comparison %v", *ann.StringComparison)
	}
	return ann, nil
}

// parseTag parses a comma-separated vo tag.
func parseTag(tag string) (apis.Annotations, error) {
	var ann apis.Annotations
	if tag == "" {
		return ann, nil
	}
	for _, item := range strings.Split(tag, ",") {
		key, val, _ := strings.Cut(strings.TrimSpace(item), "=")
		switch key {
		case "precision", "sigfigs":
			n, err := strconv.Atoi(val)
			if err != nil {
				return ann, errors.Wrapf(apis.ErrInvalidConfig, "%s=%q is not an integer", key, val)
			}
			style := apis.DecimalPlaces
			if key == "sigfigs" {
				style = apis.SignificantFigures
			}
			p, err := apis.NewPrecision(n, style)
			if err != nil {
				return ann, err
			}
			ann.Precision = &p
		case "compare":
			c, err := apis.ParseStringComparison(val)
			if err != nil {
				return ann, err
			}
			ann.StringComparison = &c
		case "unordered":
			ann.Unordered = true
		case "":
		default:
			return ann, errors.Wrapf(apis.ErrInvalidConfig, "unknown tag option %q", key)
		}
	}
	return ann, nil
}

// merge overlays the annotations declared in over onto ann.
func merge(ann, over apis.Annotations) apis.Annotations {
	if over.Precision != nil {
		ann.Precision = over.Precision
	}
	if over.StringComparison != nil {
		ann.StringComparison = over.StringComparison
	}
	if over.Unordered {
		ann.Unordered = true
	}
	return ann
}

func validate(t reflect.Type, ann apis.Annotations) error {
	if ann.Precision != nil {
		if err := ann.Precision.Validate(); err != nil {
			return err
		}
	}
	if ann.StringComparison != nil && !ann.StringComparison.Valid() {
		return errors.Wrapf(apis.ErrInvalidConfig, "string comparison %v", *ann.StringComparison)
	}
	if ann.Unordered && !uref.IsIterable(t) {
		return errors.Wrapf(apis.ErrInvalidConfig, "unordered declared on non-iterable %v", t)
	}
	return nil
}

// embeddedStruct reports whether sf embeds a struct (or pointer to one)
// whose fields are promoted rather than treated as one field.
func embeddedStruct(sf reflect.StructField) bool {
	return sf.Anonymous && uref.Indirect(sf.Type).Kind() == reflect.Struct
}

// throughPointer reports whether the index path crosses an embedded pointer.
func throughPointer(st reflect.Type, index []int) bool {
	t := st
	for _, i := range index[:len(index)-1] {
		ft := t.Field(i).Type
		if ft.Kind() == reflect.Pointer {
			return true
		}
		t = ft
	}
	return false
}
