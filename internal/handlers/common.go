// common.go
//
// Content service and admin API for the Ledgerline Advisors marketing site.
// Copyright (c) 2026 Ledgerline Advisors <dev@ledgerline.co>
//
// This file is part of sitecms.
// sitecms is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// sitecms is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with sitecms.
// If not, see <https://www.gnu.org/licenses/>.

package handlers

import (
	"encoding/json"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/models"
	"github.com/ledgerline/sitecms/internal/types"
	"github.com/ledgerline/sitecms/internal/utils"
	"gorm.io/datatypes"
)

// idPayload is the id-bearing fragment of JSON mutation bodies.
type idPayload struct {
	ID types.FlexUint64 `json:"id"`
}

// bodyID extracts a document id from a JSON body. Several admin forms send
// ids as strings, which FlexUint64 tolerates.
func bodyID(c *fiber.Ctx) (uint64, bool) {
	var p idPayload
	if err := c.BodyParser(&p); err != nil {
		return 0, false
	}
	return p.ID.Uint64(), p.ID.Uint64() != 0
}

// queryID extracts a document id from the ?id= query parameter.
func queryID(c *fiber.Ctx) (uint64, bool) {
	raw := c.Query("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// formID extracts a document id from a multipart form field.
func formID(c *fiber.Ctx) (uint64, bool) {
	raw := c.FormValue("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// jsonColumn wraps an already-serialized JSON string from a multipart form
// field into a JSON column value.
func jsonColumn(raw string) models.JSON {
	if raw == "" {
		return models.JSON{}
	}
	return models.JSON{JSON: datatypes.JSON(raw)}
}

// marshalColumn marshals a value into a JSON column value.
func marshalColumn(v interface{}) (models.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return models.JSON{}, err
	}
	return models.JSON{JSON: datatypes.JSON(b)}, nil
}

// saveImage persists an optional uploaded "image" file under the resource
// subdirectory and returns its web path. An absent file is not an error.
func saveImage(c *fiber.Ctx, cfg *config.Config, subdir string) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	return saveFile(fh, cfg, subdir)
}

func saveFile(fh *multipart.FileHeader, cfg *config.Config, subdir string) (string, error) {
	return utils.SaveUpload(fh, cfg.UploadDir, subdir)
}
