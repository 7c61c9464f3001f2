// Copyright 2015 Google Inc. All rights reserved.
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

// Package cmexport generates target import files: CMake scripts that let a
// downstream project recreate the libraries and executables of an upstream
// project as IMPORTED targets, with their usage requirements and
// per-configuration artifacts, without re-running the upstream build
// description.
//
// The upstream project is described through the Model and Target
// interfaces.  A Generator walks one ExportSet at a time: it resolves
// references to other targets inside generator expressions, populates the
// interface properties of every member, validates installed include
// directories against the project's source, build and install directories,
// computes per-configuration import details and finally serializes
// everything into a script that is safe to include more than once.
//
// References to targets that are not part of the export set being generated
// are not resolved eagerly.  They are recorded and checked by the generated
// script when it is loaded, so that export sets may be generated
// independently of each other and in any order.
//
// The package holds no global state.  Generators sharing a read-only Model
// and policy.Table may run concurrently.
package cmexport
