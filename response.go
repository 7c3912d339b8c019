// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vkwire

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/vkwire/tree"
)

var ErrNoResponse = errors.New("reply has neither response nor error")

// APIError is the error envelope returned by the API in place of a response
type APIError struct {
	Code    int
	Message string
	// Params echoes the request parameters, in request order
	Params []RequestParam
}

// RequestParam is one echoed request parameter
type RequestParam struct {
	Key   string
	Value string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// UnwrapResponse returns the payload of a {"response": ...} reply, or an
// *APIError for an {"error": {...}} reply
func UnwrapResponse(n tree.Node) (tree.Node, error) {
	obj, ok := tree.AsObject(n)
	if !ok {
		return nil, ErrNoResponse
	}
	if errObj, ok := tree.HasObject(obj, "error"); ok {
		return nil, newAPIError(errObj)
	}
	response, ok := obj.Get("response")
	if !ok {
		return nil, ErrNoResponse
	}
	return response, nil
}

func newAPIError(obj *tree.Object) *APIError {
	ret := &APIError{
		Code:    tree.OptInt(obj, "error_code", 0),
		Message: tree.GetFirstString(obj, "", "error_msg", "error_text"),
	}
	if params, ok := tree.HasArray(obj, "request_params"); ok {
		for _, item := range params {
			param, ok := tree.AsObject(item)
			if !ok {
				continue
			}
			ret.Params = append(
				ret.Params,
				RequestParam{
					Key:   tree.OptString(param, "key", ""),
					Value: tree.OptString(param, "value", ""),
				},
			)
		}
	}
	return ret
}
