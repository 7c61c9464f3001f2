// Copyright 2026 Google Inc. All rights reserved.
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

package pathtools

import (
	"path"
	"strings"
)

// The generated scripts are consumed on any host, so paths are compared in
// their forward-slash form regardless of the platform running the
// generator.

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// IsFullPath reports whether p is absolute on any platform the generated
// script may be consumed on: a leading slash, a drive letter followed by a
// separator, or a network share.
func IsFullPath(p string) bool {
	p = toSlash(p)
	if strings.HasPrefix(p, "/") {
		return true
	}
	if len(p) >= 3 && p[1] == ':' && p[2] == '/' && isDriveLetter(p[0]) {
		return true
	}
	return false
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Clean returns the shortest equivalent forward-slash form of p.
func Clean(p string) string {
	return path.Clean(toSlash(p))
}

// ComparePath reports whether a and b name the same location.
func ComparePath(a, b string) bool {
	return Clean(a) == Clean(b)
}

// IsSubDirectory reports whether sub is dir or lies underneath it.
func IsSubDirectory(sub, dir string) bool {
	sub, dir = Clean(sub), Clean(dir)
	if sub == dir {
		return true
	}
	if dir == "/" {
		return strings.HasPrefix(sub, "/")
	}
	return strings.HasPrefix(sub, dir+"/")
}

// PrefixPaths returns a list of paths consisting of prefix joined with each
// element of paths that is not already absolute.
func PrefixPaths(paths []string, prefix string) []string {
	result := make([]string, len(paths))
	for i, p := range paths {
		if IsFullPath(p) {
			result[i] = p
		} else {
			result[i] = prefix + "/" + p
		}
	}
	return result
}

// DirDepth returns the number of directory components above the file named
// by the relative path rel, e.g. 3 for "lib/cmake/Pkg/PkgTargets.cmake".
func DirDepth(rel string) int {
	dir := path.Dir(Clean(rel))
	if dir == "." || dir == "/" {
		return 0
	}
	return strings.Count(strings.Trim(dir, "/"), "/") + 1
}
