package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Admin renders the roster management page.
func Admin(data AdminData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var states strings.Builder
		for _, state := range data.States {
			states.WriteString(`<option value="` + esc(state) + `">` + esc(state) + `</option>`)
		}
		var categories strings.Builder
		for _, category := range data.Categories {
			categories.WriteString(`<option value="` + esc(category) + `">` + esc(category) + `</option>`)
		}
		var rows strings.Builder
		for _, official := range data.Officials {
			fake := ""
			if official.IsFake {
				fake = ` <span class="badge">decoy</span>`
			}
			rows.WriteString(`<tr>
            <td><img class="thumb" src="/` + esc(official.PhotoPath) + `" alt=""/></td>
            <td>` + esc(official.Name) + fake + `</td>
            <td>` + esc(official.Position) + `</td>
            <td>` + esc(official.State) + `</td>
            <td>` + esc(official.Category) + `</td>
          </tr>`)
		}
		_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Guess That Official - Admin</title>
    <link rel="stylesheet" href="`+assetPath("/static/styles.css")+`"/>
  </head>
  <body>
    <main class="shell">
      <header class="hero">
        <span class="tag">Admin</span>
        <h1>Manage officials</h1>
        <p><a href="/">Back to game setup</a></p>
      </header>

      <section class="panel">
        <h2>Add an official</h2>
        <form id="officialForm" class="official-form">
          <input name="name" placeholder="Full name" autocomplete="off"/>
          <input name="position" placeholder="Position (e.g. Governor)" autocomplete="off"/>
          <select name="state">
            <option value="">Select state...</option>
            `+states.String()+`
          </select>
          <select name="category">
            <option value="">Category (optional)</option>
            `+categories.String()+`
          </select>
          <textarea name="fun_fact" placeholder="Fun fact (optional)" maxlength="280"></textarea>
          <label class="mode-option">
            <input type="checkbox" name="is_fake" value="true"/>
            This is a decoy photo
          </label>
          <input id="photoInput" name="photo" type="file" accept="image/jpeg,image/png,image/gif"/>
          <img id="photoPreview" class="thumb hidden" alt="Preview"/>
          <button type="submit" class="primary">Add official</button>
        </form>
        <div id="formResult" class="result"></div>
      </section>

      <section class="panel">
        <h2>Sample data</h2>
        <p>Load the starter roster of five real officials plus one decoy.</p>
        <button id="sampleData" class="secondary" type="button">Create sample data</button>
        <div id="sampleResult" class="result"></div>
      </section>

      <section class="panel">
        <h2>Current roster</h2>
        <table class="roster">
          <thead>
            <tr><th></th><th>Name</th><th>Position</th><th>State</th><th>Category</th></tr>
          </thead>
          <tbody>`+rows.String()+`</tbody>
        </table>
      </section>
    </main>

    <script>
      const MAX_PHOTO_BYTES = 10 * 1024 * 1024;
      const form = document.getElementById("officialForm");
      const formResult = document.getElementById("formResult");
      const photoInput = document.getElementById("photoInput");
      const photoPreview = document.getElementById("photoPreview");

      const categoryByPosition = [
        ["secretary of state", "secretary_of_state"],
        ["governor", "governor"],
        ["senator", "senator"],
        ["mayor", "mayor"]
      ];

      form.elements.position.addEventListener("change", () => {
        const position = form.elements.position.value.toLowerCase();
        for (const [needle, category] of categoryByPosition) {
          if (position.includes(needle)) {
            form.elements.category.value = category;
            return;
          }
        }
      });

      photoInput.addEventListener("change", () => {
        const file = photoInput.files[0];
        if (!file) {
          photoPreview.classList.add("hidden");
          return;
        }
        if (file.size > MAX_PHOTO_BYTES) {
          formResult.textContent = "Photo must be under 10MB.";
          photoInput.value = "";
          photoPreview.classList.add("hidden");
          return;
        }
        if (!["image/jpeg", "image/png", "image/gif"].includes(file.type)) {
          formResult.textContent = "Please select a valid image file (JPG, PNG, GIF)";
          photoInput.value = "";
          photoPreview.classList.add("hidden");
          return;
        }
        formResult.textContent = "";
        photoPreview.src = URL.createObjectURL(file);
        photoPreview.classList.remove("hidden");
      });

      form.addEventListener("submit", async (event) => {
        event.preventDefault();
        if (!photoInput.files[0]) {
          formResult.textContent = "Photo required";
          return;
        }
        formResult.textContent = "Saving...";
        const res = await fetch("/api/admin/official", {
          method: "POST",
          body: new FormData(form)
        });
        const data = await res.json();
        if (!data.success) {
          formResult.textContent = data.message || (data.errors || []).join(", ") || "Failed to save.";
          return;
        }
        window.location.reload();
      });

      document.getElementById("sampleData").addEventListener("click", async () => {
        const sampleResult = document.getElementById("sampleResult");
        sampleResult.textContent = "Creating sample data...";
        const res = await fetch("/api/admin/sample-data", { method: "POST" });
        const data = await res.json();
        if (!data.success) {
          sampleResult.textContent = data.message || "Failed to create sample data.";
          return;
        }
        window.location.reload();
      });
    </script>
  </body>
</html>
`)
		return nil
	})
}
