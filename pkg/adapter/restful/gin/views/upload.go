// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// uploader renders an image upload area. Picked, dropped, and pasted
// files are all posted to /admin/images by uploadScript. The uploaded
// image URL is written into the target input, if target is not empty.
func uploader(target string) g.Node {
	return Div(Class("dropzone"), Data("upload-target", target),
		P(Class("muted"), g.Text("Drop an image here, paste it, or pick a file.")),
		Input(Type("file"), Accept("image/*"), Data("upload", "")),
		P(Class("muted"), Data("upload-status", "")),
	)
}

func uploadScript() g.Node {
	return Script(g.Raw(uploadJS))
}

const uploadJS = `
(function () {
  function zone(el) { return el.closest('.dropzone') || document.querySelector('.dropzone'); }
  function upload(z, file, source) {
    var status = z.querySelector('[data-upload-status]');
    if (!file.type || file.type.indexOf('image/') !== 0) {
      status.textContent = 'Only image files can be uploaded.';
      return;
    }
    var body = new FormData();
    body.append('image', file, file.name || 'image');
    body.append('source', source);
    status.textContent = 'Uploading...';
    fetch('/admin/images', {method: 'POST', body: body, headers: {'Accept': 'application/json'}})
      .then(function (r) { return r.json().then(function (j) { return {ok: r.ok, j: j}; }); })
      .then(function (res) {
        if (!res.ok) { throw new Error(res.j.detail || 'Upload failed'); }
        var t = z.getAttribute('data-upload-target');
        if (t) { document.querySelector(t).value = res.j.url; }
        status.textContent = 'Uploaded: ' + res.j.url;
      })
      .catch(function (e) { status.textContent = e.message; });
  }
  document.querySelectorAll('[data-upload]').forEach(function (input) {
    input.addEventListener('change', function () {
      if (input.files.length) { upload(zone(input), input.files[0], 'picker'); }
    });
  });
  document.querySelectorAll('.dropzone').forEach(function (z) {
    z.addEventListener('dragover', function (e) { e.preventDefault(); });
    z.addEventListener('drop', function (e) {
      e.preventDefault();
      if (e.dataTransfer.files.length) { upload(z, e.dataTransfer.files[0], 'drop'); }
    });
  });
  document.addEventListener('paste', function (e) {
    var items = (e.clipboardData || {}).items || [];
    for (var i = 0; i < items.length; i++) {
      if (items[i].kind === 'file') {
        upload(zone(document.activeElement || document.body), items[i].getAsFile(), 'paste');
        return;
      }
    }
  });
})();
`
