/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package form

import "github.com/magamawi/TiD-Forms/internal/system/database/model"

const (
	// formColumns is the column list selected for a full form.
	formColumns = "F.ID, F.NAME, F.DESCRIPTION, F.FIELDS, F.SETTINGS, F.STATUS, F.THEME, F.CREATED_AT, F.UPDATED_AT"
	// baseFormListQuery is the filterable base of the form listing query.
	baseFormListQuery = "SELECT F.ID, F.NAME, F.DESCRIPTION, F.STATUS, F.THEME, F.CREATED_AT, F.UPDATED_AT, " +
		"(SELECT COUNT(*) FROM FORM_ENTRIES E WHERE E.FORM_ID = F.ID) AS ENTRY_COUNT FROM FORMS F WHERE 1 = 1"
	// baseFormCountQuery is the filterable base of the form count query.
	baseFormCountQuery = "SELECT COUNT(*) AS TOTAL FROM FORMS F WHERE 1 = 1"
	// formListTail orders and pages the form listing.
	formListTail = "ORDER BY F.CREATED_AT DESC, F.ID LIMIT %s OFFSET %s"
)

const (
	queryIDFormList  = "FRQ-FORM_MGT-03"
	queryIDFormCount = "FRQ-FORM_MGT-04"
)

var (
	// queryCreateForm is the query to create a new form.
	queryCreateForm = model.DBQuery{
		ID: "FRQ-FORM_MGT-01",
		Query: "INSERT INTO FORMS (ID, NAME, DESCRIPTION, FIELDS, SETTINGS, STATUS, THEME, CREATED_AT, UPDATED_AT) " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
	}
	// queryGetFormByID is the query to get a form by its ID.
	queryGetFormByID = model.DBQuery{
		ID:    "FRQ-FORM_MGT-02",
		Query: "SELECT " + formColumns + " FROM FORMS F WHERE F.ID = $1",
	}
	// queryUpdateFormByID is the query to update a form by its ID.
	queryUpdateFormByID = model.DBQuery{
		ID: "FRQ-FORM_MGT-05",
		Query: "UPDATE FORMS SET NAME = $2, DESCRIPTION = $3, FIELDS = $4, SETTINGS = $5, STATUS = $6, THEME = $7, " +
			"UPDATED_AT = $8 WHERE ID = $1",
	}
	// queryUpdateFormStatusByID is the query to update the status of a form.
	queryUpdateFormStatusByID = model.DBQuery{
		ID:    "FRQ-FORM_MGT-06",
		Query: "UPDATE FORMS SET STATUS = $2, UPDATED_AT = $3 WHERE ID = $1",
	}
	// queryDeleteFormEntries is the query to delete every entry of a form.
	queryDeleteFormEntries = model.DBQuery{
		ID:    "FRQ-FORM_MGT-07",
		Query: "DELETE FROM FORM_ENTRIES WHERE FORM_ID = $1",
	}
	// queryDeleteFormByID is the query to delete a form by its ID.
	queryDeleteFormByID = model.DBQuery{
		ID:    "FRQ-FORM_MGT-08",
		Query: "DELETE FROM FORMS WHERE ID = $1",
	}
)
