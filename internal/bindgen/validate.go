package bindgen

import (
	"errors"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

// validate is a package-level singleton; building a validator is expensive.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return token.IsIdentifier(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// validateBatch checks every declaration and returns all problems at once.
func validateBatch(b Batch, opts Options) error {
	var errs error
	if !token.IsIdentifier(opts.Prefix) || opts.Prefix == linkedPrefix {
		errs = multierr.Append(errs, &Error{
			Kind:   KindInvalid,
			Pos:    b.Source,
			Detail: fmt.Sprintf("binding prefix %q must be a Go identifier other than %q", opts.Prefix, linkedPrefix),
		})
	}
	if !token.IsIdentifier(b.Package) {
		errs = multierr.Append(errs, &Error{
			Kind:   KindInvalid,
			Pos:    b.Source,
			Detail: fmt.Sprintf("package name %q is not a Go identifier", b.Package),
		})
	}

	seen := make(map[string]string, len(b.Functions))
	for _, fn := range b.Functions {
		errs = multierr.Append(errs, validateFunction(fn, opts.Libraries))
		if prev, dup := seen[fn.Name]; dup {
			errs = multierr.Append(errs, declError(fn, KindDuplicateFunction,
				fmt.Sprintf("already declared at %s", prev)))
			continue
		}
		seen[fn.Name] = fn.Pos
	}

	for _, fn := range b.Functions {
		if opts.Prefix == linkedPrefix {
			break
		}
		v := opts.Prefix + fn.Name
		if other, ok := strings.CutPrefix(v, linkedPrefix); ok {
			if _, clash := seen[other]; clash {
				errs = multierr.Append(errs, declError(fn, KindInvalid,
					fmt.Sprintf("binding var %s collides with the static wrapper of %s", v, other)))
			}
		}
	}
	return errs
}

func validateFunction(fn FunctionDeclaration, libs map[string]LibrarySpec) error {
	var errs error

	if err := validate.Struct(fn); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return declError(fn, KindInvalid, err.Error())
		}
		for _, fe := range fieldErrs {
			errs = multierr.Append(errs, declError(fn, KindInvalid,
				fmt.Sprintf("%s %q fails %q", fe.Namespace(), fe.Value(), fe.Tag())))
		}
	}

	switch len(fn.Libraries) {
	case 0:
		errs = multierr.Append(errs, declError(fn, KindMissingLibrary, "no library tag"))
	case 1:
		if _, ok := libs[fn.Libraries[0]]; !ok {
			errs = multierr.Append(errs, declError(fn, KindUnknownLibrary,
				fmt.Sprintf("tag %q is not one of %s", fn.Libraries[0], knownTags(libs))))
		}
	default:
		errs = multierr.Append(errs, declError(fn, KindMultipleLibraries,
			fmt.Sprintf("tags %s; exactly one is allowed", strings.Join(fn.Libraries, ", "))))
	}

	if fn.Variadic {
		errs = multierr.Append(errs, declError(fn, KindUnsupportedSignature, "variadic functions cannot be bound"))
	}
	if len(fn.Params) > maxParams {
		errs = multierr.Append(errs, declError(fn, KindUnsupportedSignature,
			fmt.Sprintf("%d parameters, at most %d are supported", len(fn.Params), maxParams)))
	}
	for i, p := range fn.Params {
		if _, err := resolveType(p.Type, false); err != nil {
			errs = multierr.Append(errs, declError(fn, KindUnsupportedType,
				fmt.Sprintf("parameter %d: %v", i, err)))
		}
	}
	emitted := make(map[string]int, len(fn.Params))
	for i, p := range fn.Params {
		name := paramName(p.Name, i)
		if j, dup := emitted[name]; dup {
			errs = multierr.Append(errs, declError(fn, KindInvalid,
				fmt.Sprintf("parameters %d and %d are both named %q", j, i, name)))
			continue
		}
		emitted[name] = i
	}
	if _, err := resolveType(fn.Result, true); err != nil {
		errs = multierr.Append(errs, declError(fn, KindUnsupportedType,
			fmt.Sprintf("result: %v", err)))
	}
	return errs
}

func knownTags(libs map[string]LibrarySpec) string {
	tags := make([]string, 0, len(libs))
	for tag := range libs {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return strings.Join(tags, ", ")
}
