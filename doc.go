/*
Package ipp implements the IPP core protocol, as defined by RFC 2910
(encoding) and RFC 2911 (semantics).

It doesn't implement high-level operations, such as "print a document"
or "cancel print job". Its scope is limited to proper generation and
parsing of IPP requests and responses: a binary decoder, a binary
encoder, a typed attribute value model, and a streaming parser that
extracts a message header from chunked input without buffering the
document body that follows it.

Request and response share the same wire format, represented here by
Message, with the only difference that Code holds the operation code
on a request and the status code on a response.

Example:

	package main

	import (
		"bytes"
		"io"
		"net/http"
		"os"

		"github.com/cepharum/ipp"
	)

	const uri = "http://192.168.1.102:631"

	func makeRequest() ([]byte, error) {
		m := ipp.NewRequest(ipp.DefaultVersion, ipp.OpGetPrinterAttributes, 1)
		m.Operation.Add(ipp.MakeAttribute("attributes-charset",
			ipp.TagCharset, ipp.String("utf-8")))
		m.Operation.Add(ipp.MakeAttribute("attributes-natural-language",
			ipp.TagLanguage, ipp.String("en-us")))
		m.Operation.Add(ipp.MakeAttribute("printer-uri",
			ipp.TagURI, ipp.String(uri)))
		m.Operation.Add(ipp.MakeAttribute("requested-attributes",
			ipp.TagKeyword, ipp.String("all")))

		return m.EncodeBytes()
	}

	func check(err error) {
		if err != nil {
			panic(err)
		}
	}

	func main() {
		request, err := makeRequest()
		check(err)

		resp, err := http.Post(uri, ipp.ContentType, bytes.NewBuffer(request))
		check(err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		check(err)

		respMsg, err := ipp.Parse(body)
		check(err)

		respMsg.Print(os.Stdout, false)
	}
*/
package ipp
