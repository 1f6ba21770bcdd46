/*
 * json.go, part of gogauss.
 *
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicosdotutadotcl>
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
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chemjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	gauss "github.com/rmera/gogauss"
)

//An easily JSON-serializable error type,
type Error struct {
	deco          []string
	err           error
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InInput       bool //If error, was it in reading the data?
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	Function      string //which go function gave the error
	Message       string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Unwrap returns the error that caused J, if any.
func (J *Error) Unwrap() error {
	return J.err
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) // Yo, dawg, I heard you like errors, so I got an error while serializing your error so you can... you know the drill.
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "input":
		jerr.InInput = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	jerr.err = err
	jerr.deco = []string{function}
	return jerr
}

//Information to be passed back to the calling program after a calculation
//has been post-processed.
type Info struct {
	Directory string
	Success   bool
	Model     string
	Results   gauss.Record
}

//Send Marshals the info and writes to out.
func (J *Info) Send(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(J); err != nil {
		return NewError("postprocess", "Info.Send", err)
	}
	return nil
}

//DecodeData decodes the JSON dump of a log reader (a cclib-like object)
//into a nested mapping. Numbers are kept as json.Number, so integers stay
//integers.
func DecodeData(in io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(in)
	dec.UseNumber()
	var ret map[string]any
	if err := dec.Decode(&ret); err != nil {
		return nil, NewError("input", "DecodeData", err)
	}
	if ret == nil {
		return nil, NewError("input", "DecodeData", fmt.Errorf("no data"))
	}
	return ret, nil
}

//ReadData decodes the file name, which may be compressed, with DecodeData.
func ReadData(name string) (map[string]any, error) {
	f, err := gauss.OpenFile(name)
	if err != nil {
		return nil, gauss.Decorate(err, "ReadData")
	}
	defer f.Close()
	ret, err := DecodeData(f)
	if err != nil {
		return nil, gauss.Decorate(err, "ReadData")
	}
	return ret, nil
}

//DecodeInfo reads back an Info written with Send.
func DecodeInfo(in io.Reader) (*Info, error) {
	var raw struct {
		Directory string
		Success   bool
		Model     string
		Results   map[string]any
	}
	dec := json.NewDecoder(in)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, NewError("input", "DecodeInfo", err)
	}
	ret := &Info{Directory: raw.Directory, Success: raw.Success, Model: raw.Model, Results: gauss.NewRecord()}
	for k, v := range raw.Results {
		if v == nil {
			//NaNs are written as null
			continue
		}
		if err := ret.Results.SetAny(k, v); err != nil {
			return nil, NewError("input", "DecodeInfo", err)
		}
	}
	return ret, nil
}

//EncodeRecord writes rec to out as a single JSON object with sorted keys.
func EncodeRecord(rec gauss.Record, out io.Writer) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(rec); err != nil {
		return NewError("postprocess", "EncodeRecord", err)
	}
	return nil
}
