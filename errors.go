/*
 * errors.go, part of abitools.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package abitools

import "fmt"

//Error is the interface implemented by the errors of this library and its
//subpackages. The Decorate method allows the caller to append information
//(normally, the name of the function passing the error up) without changing
//the error's type. If passed an empty string, Decorate just returns the
//current decoration slice without appending anything.
type Error interface {
	Error() string
	Decorate(string) []string
}

//ValidationError signals a value outside a closed enumeration (an
//unrecognized parameter kind, model selector or flag literal).
type ValidationError struct {
	message string
	deco    []string
}

//NewValidationError returns a ValidationError with the given message,
//decorated with the name of the function that detected the problem.
func NewValidationError(message, caller string) *ValidationError {
	return &ValidationError{message: message, deco: []string{caller}}
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("abitools: invalid value: %s", err.message)
}

//Decorate adds new information to the error.
func (err *ValidationError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//StructureError signals a degenerate structure, typically a singular
//lattice with a zero-length basis vector.
type StructureError struct {
	message string
	deco    []string
}

//NewStructureError returns a StructureError with the given message,
//decorated with the name of the function that detected the problem.
func NewStructureError(message, caller string) *StructureError {
	return &StructureError{message: message, deco: []string{caller}}
}

func (err *StructureError) Error() string {
	return fmt.Sprintf("abitools: bad structure: %s", err.message)
}

//Decorate adds new information to the error.
func (err *StructureError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate decorates err if it implements Error, and otherwise wraps it
//in a ValidationError-shaped message preserving the original text.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
		return e
	}
	return fmt.Errorf("%s: %w", caller, err)
}
